package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bluegreyowl/gradebook/api"
	"github.com/bluegreyowl/gradebook/internal/grades"
	lf "github.com/bluegreyowl/gradebook/internal/logfield"
	"github.com/bluegreyowl/gradebook/internal/models"
	"github.com/bluegreyowl/gradebook/internal/store"
)

const statsCacheTTL = time.Minute

func statusCode(err error) int {
	switch {
	case store.IsValidation(err):
		return http.StatusBadRequest
	case store.IsDuplicateKey(err):
		return http.StatusConflict
	case store.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) fail(c *gin.Context, err error) {
	s.logger.Warn("Request failed", zap.Error(err))
	c.JSON(statusCode(err), &api.StudentResponse{
		Status: api.Status{Ok: false, Error: err.Error()},
	})
}

func (s *server) listStudents(c *gin.Context) {
	var students []*models.Student

	if query, found := c.GetQuery("q"); found {
		students = s.store.Search(query)
	} else {
		sortKey, err := store.ParseSortKey(c.Query("sort"))
		if err != nil {
			s.fail(c, err)
			return
		}
		grade := grades.Grade(c.Query("grade"))
		if grade != "" && !s.store.Scale().Known(grade) {
			s.fail(c, &store.ValidationError{Field: "grade", Reason: fmt.Sprintf("unknown grade %q", grade)})
			return
		}
		students = s.store.List(store.ListOptions{
			Grade: grade,
			Sort:  sortKey,
		})
	}

	c.JSON(http.StatusOK, &api.StudentsResponse{
		Status:   api.Status{Ok: true},
		Students: students,
	})
}

func (s *server) addStudent(c *gin.Context) {
	req := api.AddStudentRequest{}
	if err := c.BindJSON(&req); err != nil {
		return
	}

	student, err := s.store.Add(models.Student{
		RollNumber: req.RollNumber,
		Name:       req.Name,
		Age:        req.Age,
		Marks:      req.Marks,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info("Added student via api", lf.RollNumber(student.RollNumber))
	c.JSON(http.StatusOK, &api.StudentResponse{
		Status:  api.Status{Ok: true},
		Student: student,
	})
}

func (s *server) getStudent(c *gin.Context) {
	student, err := s.store.Get(c.Param("roll"))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.StudentResponse{
		Status:  api.Status{Ok: true},
		Student: student,
	})
}

func (s *server) updateStudent(c *gin.Context) {
	req := api.UpdateStudentRequest{}
	if err := c.BindJSON(&req); err != nil {
		return
	}

	student, err := s.store.Update(c.Param("roll"), store.Update{
		Name:  req.Name,
		Age:   req.Age,
		Marks: req.Marks,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.StudentResponse{
		Status:  api.Status{Ok: true},
		Student: student,
	})
}

func (s *server) deleteStudent(c *gin.Context) {
	if err := s.store.Delete(c.Param("roll")); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.StudentResponse{
		Status: api.Status{Ok: true},
	})
}

func (s *server) statistics(c *gin.Context) {
	key := fmt.Sprintf("stats@%d", s.store.Revision())
	item, err := s.statsCache.Fetch(key, statsCacheTTL, func() (interface{}, error) {
		stats := s.store.Statistics()
		return &stats, nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.StatisticsResponse{
		Status:     api.Status{Ok: true},
		Statistics: item.Value().(*store.Statistics),
	})
}
