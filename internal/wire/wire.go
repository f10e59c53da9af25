package wire

import (
	"ShareSphere/internal/api"
	"ShareSphere/internal/api/config"
	"ShareSphere/internal/api/handler"
	"ShareSphere/internal/job"
	"ShareSphere/internal/pkg/cron"
	"ShareSphere/internal/repository"
	"ShareSphere/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	sphereRepo := repository.NewSphereRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	banRepo := repository.NewBanRepository(db)

	userService := service.NewUserService(userRepo)
	moderationService := service.NewModerationService(userRepo, sphereRepo, postRepo, commentRepo, banRepo)
	sphereService := service.NewSphereService(sphereRepo, moderationService)
	commentService := service.NewCommentService(commentRepo, postRepo, moderationService, service.NewCommentCountCache())
	postService := service.NewPostService(postRepo, sphereRepo, voteRepo, commentService, moderationService)
	voteService := service.NewVoteService(voteRepo, postRepo, commentRepo, moderationService, service.NewPostListCache())

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		SphereHandler:     handler.NewSphereHandler(sphereService),
		PostHandler:       handler.NewPostHandler(postService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		VoteHandler:       handler.NewVoteHandler(voteService),
		ModerationHandler: handler.NewModerationHandler(moderationService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewScoreSweepJob(postRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
