package gradebook

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/bluegreyowl/gradebook/api"
	"github.com/bluegreyowl/gradebook/internal/models"
	"github.com/bluegreyowl/gradebook/internal/store"
)

type Client struct {
	client *resty.Client
}

func NewClient(endpoint string) (*Client, error) {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Second * 10).
		SetRetryCount(3)

	return &Client{client}, nil
}

// WaitReady probes the server until it responds or the deadline passes.
func (c *Client) WaitReady(timeout time.Duration) error {
	ping := func() error {
		_, err := c.client.R().Get("/ping")
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = timeout
	return backoff.Retry(ping, policy)
}

type ListOptions struct {
	Query string
	Sort  string
	Grade string
}

func (c *Client) ListStudents(opts ListOptions) ([]*models.Student, error) {
	res := &api.StudentsResponse{}
	req := c.client.R().SetResult(res).SetError(res)
	if opts.Query != "" {
		req.SetQueryParam("q", opts.Query)
	}
	if opts.Sort != "" {
		req.SetQueryParam("sort", opts.Sort)
	}
	if opts.Grade != "" {
		req.SetQueryParam("grade", opts.Grade)
	}

	_, err := req.Get("/api/students")
	if err != nil {
		return nil, err
	}
	if !res.Ok {
		return nil, fmt.Errorf("failed to fetch students: %s", res.Error)
	}
	return res.Students, nil
}

func (c *Client) GetStudent(rollNumber string) (*models.Student, error) {
	res := &api.StudentResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("roll", rollNumber).
		Get("/api/students/{roll}")
	if err != nil {
		return nil, err
	}
	if !res.Ok {
		return nil, fmt.Errorf("failed to fetch student: %s", res.Error)
	}
	return res.Student, nil
}

func (c *Client) AddStudent(req api.AddStudentRequest) (*models.Student, error) {
	res := &api.StudentResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetBody(req).
		Post("/api/students")
	if err != nil {
		return nil, err
	}
	if !res.Ok {
		return nil, fmt.Errorf("failed to add student: %s", res.Error)
	}
	return res.Student, nil
}

func (c *Client) UpdateStudent(rollNumber string, req api.UpdateStudentRequest) (*models.Student, error) {
	res := &api.StudentResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("roll", rollNumber).
		SetBody(req).
		Put("/api/students/{roll}")
	if err != nil {
		return nil, err
	}
	if !res.Ok {
		return nil, fmt.Errorf("failed to update student: %s", res.Error)
	}
	return res.Student, nil
}

func (c *Client) DeleteStudent(rollNumber string) error {
	res := &api.StudentResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("roll", rollNumber).
		Delete("/api/students/{roll}")
	if err != nil {
		return err
	}
	if !res.Ok {
		return fmt.Errorf("failed to delete student: %s", res.Error)
	}
	return nil
}

func (c *Client) LoadStatistics() (*store.Statistics, error) {
	res := &api.StatisticsResponse{}
	_, err := c.client.R().
		SetResult(res).
		SetError(res).
		Get("/api/statistics")
	if err != nil {
		return nil, err
	}
	if !res.Ok {
		return nil, fmt.Errorf("failed to fetch statistics: %s", res.Error)
	}
	return res.Statistics, nil
}
