package database

import (
	"errors"
	"log"

	"pos-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedPermissions(db)
	SeedRoles(db)
	SeedBranches(db)
	SeedCategories(db)
	SeedAdminUser(db)
}

func SeedPermissions(db *gorm.DB) {
	permissions := []models.Permission{
		{Name: "transfer.create"},
		{Name: "opname.save"},
		{Name: "po.create"},
		{Name: "po.autofill"},
		{Name: "product.create"},
		{Name: "branch.manage"},
	}

	for _, p := range permissions {
		var existing models.Permission
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&p)
			}
		}
	}
}

func SeedRoles(db *gorm.DB) {
	var existing models.Role
	if err := db.Where("name = ?", "admin").First(&existing).Error; err == nil {
		return
	}

	var permissions []models.Permission
	db.Find(&permissions)

	role := models.Role{Name: "admin", Permissions: permissions}
	if err := db.Create(&role).Error; err != nil {
		log.Printf("Failed to seed admin role: %v", err)
	}
}

func SeedBranches(db *gorm.DB) {
	branches := []models.Branch{
		{Code: "HQ", Name: "Head Office", IsActive: true},
	}

	for _, b := range branches {
		var existing models.Branch
		if err := db.Where("code = ?", b.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&b)
			}
		}
	}
}

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Code: "GEN", Name: "General"},
	}

	for _, c := range categories {
		var existing models.Category
		if err := db.Where("code = ?", c.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&c)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@pos.local").First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	var adminRole models.Role
	db.Where("name = ?", "admin").First(&adminRole)

	user := models.User{
		Name:     "Administrator",
		Email:    "admin@pos.local",
		Password: string(hashed),
		IsActive: true,
		Roles:    []models.Role{adminRole},
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	}
}
