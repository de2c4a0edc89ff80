package http

// Request bodies are validated against these shapes before any
// persistence call. Dates are calendar-date strings without a timezone.

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// Fields returns the column patch carrying only the fields present in
// the request.
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	return fields
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	StartDate   *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateProjectRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.StartDate != nil {
		fields["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		fields["end_date"] = *r.EndDate
	}
	return fields
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=todo in-progress completed"`
	Deadline    string `json:"deadline" validate:"required,datetime=2006-01-02"`
	ProjectID   string `json:"projectId" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	Deadline    *string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	ProjectID   *string `json:"projectId" validate:"omitempty,min=1"`
	UserID      *string `json:"userId" validate:"omitempty,min=1"`
}

func (r *UpdateTaskRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Deadline != nil {
		fields["deadline"] = *r.Deadline
	}
	if r.ProjectID != nil {
		fields["project_id"] = *r.ProjectID
	}
	if r.UserID != nil {
		fields["user_id"] = *r.UserID
	}
	return fields
}
