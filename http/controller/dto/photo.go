package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
)

type PhotoOwner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type LikeItem struct {
	UserID uuid.UUID `json:"user_id"`
}

type CommentItem struct {
	ID        uuid.UUID   `json:"id"`
	Content   string      `json:"content"`
	Author    *PhotoOwner `json:"author,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type PhotoListItem struct {
	ID          string      `json:"id"`
	Filename    string      `json:"filename"`
	URL         string      `json:"url"`
	Owner       *PhotoOwner `json:"owner,omitempty"`
	LikesCount  int         `json:"likes_count"`
	LikedByUser bool        `json:"liked_by_user"`
	CreatedAt   time.Time   `json:"created_at"`
}

type PhotoListResponse struct {
	Data        []PhotoListItem `json:"data"`
	CurrentPage int             `json:"current_page"`
	PerPage     int             `json:"per_page"`
	Total       int64           `json:"total"`
	LastPage    int             `json:"last_page"`
}

type PhotoDetail struct {
	ID          string        `json:"id"`
	Filename    string        `json:"filename"`
	URL         string        `json:"url"`
	Owner       *PhotoOwner   `json:"owner,omitempty"`
	Comments    []CommentItem `json:"comments"`
	Likes       []LikeItem    `json:"likes"`
	LikesCount  int           `json:"likes_count"`
	LikedByUser bool          `json:"liked_by_user"`
	CreatedAt   time.Time     `json:"created_at"`
}

type LikeResponse struct {
	PhotoID string `json:"photo_id"`
}

func newPhotoOwner(user *entity.User) *PhotoOwner {
	if user == nil {
		return nil
	}
	return &PhotoOwner{ID: user.ID, Name: user.Name}
}

func NewCommentItem(comment *entity.Comment) CommentItem {
	return CommentItem{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    newPhotoOwner(comment.Author),
		CreatedAt: comment.CreatedAt,
	}
}

func NewPhotoListItem(photo *entity.Photo, viewer uuid.UUID, url string) PhotoListItem {
	item := PhotoListItem{
		ID:         photo.ID,
		Filename:   photo.Filename,
		URL:        url,
		Owner:      newPhotoOwner(photo.Owner),
		LikesCount: len(photo.Likes),
		CreatedAt:  photo.CreatedAt,
	}
	for _, like := range photo.Likes {
		if like.UserID == viewer {
			item.LikedByUser = true
			break
		}
	}
	return item
}

// NewPhotoDetail builds the viewer-independent projection. LikedByUser is
// filled in afterwards so the detail can be cached and shared.
func NewPhotoDetail(photo *entity.Photo, url string) *PhotoDetail {
	detail := &PhotoDetail{
		ID:        photo.ID,
		Filename:  photo.Filename,
		URL:       url,
		Owner:     newPhotoOwner(photo.Owner),
		Comments:  make([]CommentItem, 0, len(photo.Comments)),
		Likes:     make([]LikeItem, 0, len(photo.Likes)),
		CreatedAt: photo.CreatedAt,
	}
	for i := range photo.Comments {
		detail.Comments = append(detail.Comments, NewCommentItem(&photo.Comments[i]))
	}
	for _, like := range photo.Likes {
		detail.Likes = append(detail.Likes, LikeItem{UserID: like.UserID})
	}
	detail.LikesCount = len(detail.Likes)
	return detail
}

// Personalize sets the viewer-dependent field on a (possibly cached) detail.
func (d *PhotoDetail) Personalize(viewer uuid.UUID) {
	d.LikedByUser = false
	for _, like := range d.Likes {
		if like.UserID == viewer {
			d.LikedByUser = true
			return
		}
	}
}
