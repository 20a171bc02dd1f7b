package state

import (
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
