package db

import (
	"WorkTok.com/pkg/database"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init 复用全局连接池
func Init() {
	DB = database.DB
}
