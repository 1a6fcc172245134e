package repository

import (
	"github.com/tnqbao/gau-photo-service/infra"
)

type Repository struct {
	UserRepo    *UserRepository
	PhotoRepo   *PhotoRepository
	CommentRepo *CommentRepository
	LikeRepo    *LikeRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		UserRepo:    NewUserRepository(infra.Postgres.DB),
		PhotoRepo:   NewPhotoRepository(infra.Postgres.DB),
		CommentRepo: NewCommentRepository(infra.Postgres.DB),
		LikeRepo:    NewLikeRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
