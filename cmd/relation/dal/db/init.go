package db

import (
	"WorkTok.com/pkg/database"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	DB = database.DB
}
