package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/task-management/internal/comment"
	commentDatamodel "github.com/frahmantamala/task-management/internal/core/datamodel/comment"
)

func TestCommentRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CommentRepository Suite")
}

type SQLiteUser struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (SQLiteUser) TableName() string {
	return "users"
}

var _ = Describe("CommentRepository", func() {
	var (
		db   *gorm.DB
		repo comment.Repository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteUser{}, &commentDatamodel.Comment{})
		Expect(err).NotTo(HaveOccurred())

		users := []SQLiteUser{
			{ID: 1, Name: "Admin"},
			{ID: 2, Name: "Employee"},
		}
		Expect(db.Create(&users).Error).NotTo(HaveOccurred())

		repo = NewCommentRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should insert the comment and resolve the author name", func() {
			c, err := repo.Create(10, 2, "Looks good")

			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).To(BeNumerically(">", 0))
			Expect(c.TodoID).To(Equal(int64(10)))
			Expect(c.UserName).To(Equal("Employee"))
		})
	})

	Describe("ListByTodo", func() {
		It("should return comments for the task newest first", func() {
			_, err := repo.Create(10, 1, "first")
			Expect(err).NotTo(HaveOccurred())
			time.Sleep(10 * time.Millisecond)
			_, err = repo.Create(10, 2, "second")
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Create(99, 1, "other task")
			Expect(err).NotTo(HaveOccurred())

			comments, err := repo.ListByTodo(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(2))
			Expect(comments[0].Content).To(Equal("second"))
			Expect(comments[0].UserName).To(Equal("Employee"))
			Expect(comments[1].Content).To(Equal("first"))
			Expect(comments[1].UserName).To(Equal("Admin"))
		})

		It("should return an empty list for a task without comments", func() {
			comments, err := repo.ListByTodo(12345)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(BeEmpty())
		})
	})
})
