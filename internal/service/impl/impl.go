package impl

import (
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/queue"
	"github.com/sidereusnuntius/microblog/internal/service"
	"github.com/sidereusnuntius/microblog/internal/state"
)

const BcryptCost = 12

type AppService struct {
	Config config.Configuration
	DB     db.DB
	Queue  queue.ApQueue
}

func New(state *state.State, queue queue.ApQueue) (service.Service, error) {
	return &AppService{
		Config: state.Config,
		DB:     state.DB,
		Queue:  queue,
	}, nil
}
