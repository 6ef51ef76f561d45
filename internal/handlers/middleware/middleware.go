package middleware

import (
	"wardrobe/config"
	"wardrobe/internal/database"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB           database.DB
	userRepo     repositories.UserRepository
	tokenService *services.TokenService
	Config       config.Config
	log          logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	tokenService *services.TokenService,
) Middleware {
	return Middleware{
		DB:           db,
		userRepo:     repos.User,
		tokenService: tokenService,
		Config:       config,
		log:          logger.New("middleware"),
	}
}
