package handlers

import (
	"github.com/go-playground/validator/v10"
	"microblogLite/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	TablesService service.TablesService
	Validate      *validator.Validate
}

func NewHandlers(service *service.Service) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		PostService:   service.Post,
		TablesService: service.Tables,
		Validate:      validator.New(),
	}
}
