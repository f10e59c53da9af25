package model

// PostSortType 帖子列表排序方式
type PostSortType string

const (
	PostSortHot      PostSortType = "hot"
	PostSortTrending PostSortType = "trending"
	PostSortBest     PostSortType = "best"
	PostSortRecent   PostSortType = "recent"
)

// OrderColumn 排序方式对应的列名
func (s PostSortType) OrderColumn() string {
	switch s {
	case PostSortTrending:
		return "trending_score"
	case PostSortBest:
		return "score"
	case PostSortRecent:
		return "created_at"
	default:
		return "recommended_score"
	}
}

// Valid 是否为已知排序方式
func (s PostSortType) Valid() bool {
	switch s {
	case PostSortHot, PostSortTrending, PostSortBest, PostSortRecent:
		return true
	}
	return false
}

// CommentSortType 评论树排序方式
type CommentSortType string

const (
	CommentSortBest   CommentSortType = "best"
	CommentSortRecent CommentSortType = "recent"
)

// Valid 是否为已知排序方式
func (s CommentSortType) Valid() bool {
	return s == CommentSortBest || s == CommentSortRecent
}
