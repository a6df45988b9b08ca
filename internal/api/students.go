package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wellywell/washboard/internal/types"
)

func studentPath(bagNo string) string {
	return "/admin/students/" + url.PathEscape(bagNo)
}

func (c *Client) ListStudents(ctx context.Context) Result[[]types.Student] {
	return fetchList(ctx, c, "/admin/students", wireStudent.toStudent)
}

func (c *Client) CreateStudent(ctx context.Context, in types.StudentInput) (*types.Student, error) {
	return c.writeStudent(ctx, http.MethodPost, "/auth/student/signup", in)
}

func (c *Client) UpdateStudent(ctx context.Context, bagNo string, in types.StudentInput) (*types.Student, error) {
	in.BagNo = bagNo
	return c.writeStudent(ctx, http.MethodPut, studentPath(bagNo), in)
}

func (c *Client) DeleteStudent(ctx context.Context, bagNo string) error {
	return c.do(ctx, http.MethodDelete, studentPath(bagNo), nil, nil)
}

func (c *Client) writeStudent(ctx context.Context, method, path string, in types.StudentInput) (*types.Student, error) {
	var w *wireStudent
	if err := c.do(ctx, method, path, in, &w); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	s := w.toStudent()
	return &s, nil
}
