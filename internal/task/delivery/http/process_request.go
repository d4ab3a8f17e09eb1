package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/model"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
// "due" is accepted as an alias of "dueDate".
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.DueDate == "" {
		req.DueDate = c.Query("due")
	}
	return req, req.validate()
}

// processUpdateReq decodes the partial update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	req := updateReq{ID: c.Param("id")}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}

	in := &req.input
	for key, value := range raw {
		isNull := string(bytes.TrimSpace(value)) == "null"

		switch key {
		case "title":
			if isNull {
				return req, errors.New("title cannot be null")
			}
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return req, fmt.Errorf("title: %w", err)
			}
			in.Title = &s

		case "description":
			if isNull {
				in.ClearDescription = true
				continue
			}
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return req, fmt.Errorf("description: %w", err)
			}
			in.Description = &s

		case "status":
			var s string
			if isNull {
				return req, errors.New("status cannot be null")
			}
			if err := json.Unmarshal(value, &s); err != nil {
				return req, fmt.Errorf("status: %w", err)
			}
			status := model.TaskStatus(s)
			in.Status = &status

		case "priority":
			var s string
			if isNull {
				return req, errors.New("priority cannot be null")
			}
			if err := json.Unmarshal(value, &s); err != nil {
				return req, fmt.Errorf("priority: %w", err)
			}
			priority := model.TaskPriority(s)
			in.Priority = &priority

		case "dueDate":
			var s string
			if !isNull {
				if err := json.Unmarshal(value, &s); err != nil {
					return req, fmt.Errorf("dueDate: %w", err)
				}
			}
			if s == "" {
				in.ClearDueDate = true
				continue
			}
			due, err := parseDueDate(s)
			if err != nil {
				return req, err
			}
			in.DueDate = &due
		}
	}

	return req, nil
}
