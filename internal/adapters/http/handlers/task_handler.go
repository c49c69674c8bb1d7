package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/ports"
)

// TaskHandler handles HTTP requests for task CRUD. It also holds the state
// service so that moving a task to another state can refresh the
// denormalized state name in the same request.
type TaskHandler struct {
	tasks  ports.TaskService
	states ports.ProjectStateService
}

// NewTaskHandler creates a new TaskHandler with the given service ports.
func NewTaskHandler(tasks ports.TaskService, states ports.ProjectStateService) *TaskHandler {
	return &TaskHandler{tasks: tasks, states: states}
}

// ListTasks handles GET /api/v1/tasks. With a state_id query parameter the
// listing is narrowed to tasks in that state, where an empty list is a
// valid result rather than a 404.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("state_id"); raw != "" {
		stateID, err := uuid.Parse(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{"state_id": "must be a valid UUID"},
			})
			return
		}

		tasks, err := h.tasks.GetByState(r.Context(), stateID)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
		return
	}

	tasks, err := h.tasks.GetAll(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Validate() already guaranteed both IDs parse.
	projectID := uuid.MustParse(req.ProjectID)
	stateID := uuid.MustParse(req.StateID)

	created, err := h.tasks.Create(r.Context(), req.Name, projectID, stateID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}. Omitted fields keep their
// current value. Moving the task to another state refreshes the cached
// state name from the target state's title.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	existing, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated := existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.StateID != nil {
		state, err := h.states.GetByID(r.Context(), uuid.MustParse(*req.StateID))
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		updated.StateID = state.ID
		updated.StateName = state.Title
	}

	persisted, err := h.tasks.Update(r.Context(), updated)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(persisted))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
