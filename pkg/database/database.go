package database

import (
	"coursely_backend/internal/config"
	"coursely_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式下默认跳过迁移，由 -migrate / -migrate-only 显式触发
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Course{},
			&model.Lesson{},
			&model.Enrollment{},
			&model.LessonProgress{},
			&model.Question{},
			&model.Option{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		if err := seedCatalog(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// seedCatalog 课程目录为空时写入示例课程，便于本地开发
// 正式环境的课程由运营侧导入，这里不会覆盖已有数据
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	course := &model.Course{
		Title:      "Introduction to Programming",
		Instructor: "Ada Lovelace",
	}
	if err := db.Create(course).Error; err != nil {
		return err
	}

	lessons := []model.Lesson{
		{CourseID: course.ID, Title: "Variables and Types"},
		{CourseID: course.ID, Title: "Control Flow"},
		{CourseID: course.ID, Title: "Functions"},
	}
	if err := db.Create(&lessons).Error; err != nil {
		return err
	}

	question := &model.Question{
		LessonID:     lessons[0].ID,
		QuestionText: "Which of the following is a valid variable name?",
	}
	if err := db.Create(question).Error; err != nil {
		return err
	}

	options := []model.Option{
		{QuestionID: question.ID, OptionText: "2count", IsCorrect: false},
		{QuestionID: question.ID, OptionText: "count_2", IsCorrect: true},
		{QuestionID: question.ID, OptionText: "count-2", IsCorrect: false},
	}
	if err := db.Create(&options).Error; err != nil {
		return err
	}

	log.Println("Seeded sample catalog data")
	return nil
}
