package consts

const (
	PostHotListKey      = "post:list:hot:"
	PostCommentCountKey = "post:comment:count:"
	SphereInfoKey       = "sphere:info:"
)

const (
	RankSweepLock = "rank:sweep:lock"
)
