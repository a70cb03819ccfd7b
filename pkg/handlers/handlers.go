// Package handlers implements the SCROLLIT HTTP surface.
package handlers

import (
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"scrollit/pkg/auth"
	"scrollit/pkg/mediahost"
)

type Handler struct {
	db       *gorm.DB
	sessions *auth.Manager
	host     mediahost.Host
	log      *zap.Logger
}

func New(db *gorm.DB, sessions *auth.Manager, host mediahost.Host, log *zap.Logger) *Handler {
	return &Handler{
		db:       db,
		sessions: sessions,
		host:     host,
		log:      log,
	}
}
