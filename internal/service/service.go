package service

import (
	"microblogLite/internal/repository"
	"microblogLite/internal/storage"
)

type Service struct {
	Auth   AuthService
	Post   PostService
	Tables TablesService
}

// NewService wires the services; exportStorage may be nil when export is disabled.
func NewService(rep *repository.Repository, tokens TokenIssuer, exportStorage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, tokens),
		Post:   NewPostService(rep.Post, exportStorage),
		Tables: NewTablesService(rep.Tables),
	}
}
