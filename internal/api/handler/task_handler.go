package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/garageworks/garage-service/internal/api/metrics"
	"github.com/garageworks/garage-service/internal/core/domain"
	"github.com/garageworks/garage-service/internal/core/ports"
)

// TaskHandler handles HTTP requests for task intake, queries and status changes.
// Errors are returned to the central echo error handler.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /tasks.
//
// @Summary      List tasks for a vehicle
// @Tags         tasks
// @Produce      json
// @Param        licenseNumber  query     string  true   "Car license number"
// @Param        status         query     string  false  "Exact status filter"
// @Success      200            {array}   taskResponse
// @Failure      400            {object}  map[string]string
// @Failure      500            {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.ListByLicense(c.Request().Context(), c.QueryParam("licenseNumber"), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// CustomerTasks handles GET /user-tasks/:licenseNumber.
//
// @Summary      Active tasks of a customer
// @Tags         tasks
// @Produce      json
// @Param        licenseNumber  path      string  true  "Customer license number"
// @Success      200            {array}   taskResponse
// @Failure      404            {object}  map[string]string
// @Router       /user-tasks/{licenseNumber} [get]
func (h *TaskHandler) CustomerTasks(c echo.Context) error {
	tasks, err := h.service.CustomerTasks(c.Request().Context(), c.Param("licenseNumber"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// WorkerHistory handles GET /worker-tasks-history/:workerName.
//
// @Summary      Task history of a worker
// @Tags         tasks
// @Produce      json
// @Param        workerName  path      string  true  "Worker user name"
// @Success      200         {array}   taskResponse
// @Failure      404         {object}  map[string]string
// @Router       /worker-tasks-history/{workerName} [get]
func (h *TaskHandler) WorkerHistory(c echo.Context) error {
	tasks, err := h.service.WorkerHistory(c.Request().Context(), c.Param("workerName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// AllCustomerTasks handles GET /all-customer-tasks.
//
// @Summary      Every customer with populated tasks
// @Tags         manager
// @Produce      json
// @Success      200  {array}  customerTasksResponse
// @Router       /all-customer-tasks [get]
func (h *TaskHandler) AllCustomerTasks(c echo.Context) error {
	all, err := h.service.AllCustomerTasks(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]customerTasksResponse, 0, len(all))
	for _, ct := range all {
		out = append(out, toCustomerTasksResponse(ct))
	}
	return c.JSON(http.StatusOK, out)
}

// AllWorkerTasks handles GET /all-worker-tasks.
//
// @Summary      Every worker with populated history
// @Tags         manager
// @Produce      json
// @Success      200  {array}  workerTasksResponse
// @Router       /all-worker-tasks [get]
func (h *TaskHandler) AllWorkerTasks(c echo.Context) error {
	all, err := h.service.AllWorkerTasks(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]workerTasksResponse, 0, len(all))
	for _, wt := range all {
		out = append(out, toWorkerTasksResponse(wt))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /tasks.
//
// @Summary      Submit a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Replays the first task created with this key"
// @Param        body             body      createTaskRequest  true   "Task details"
// @Success      201              {object}  taskResponse
// @Success      200              {object}  taskResponse  "Idempotent replay"
// @Failure      400              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		CarLicenseNumber: req.CarLicenseNumber,
		TaskName:         req.TaskName,
		Price:            req.Price,
		WorkTime:         req.WorkTime,
		WorkerName:       req.WorkerName,
		IdempotencyKey:   c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}
	metrics.ObserveTaskCreated(res.Replayed)

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	return c.JSON(status, toTaskResponse(res.Task))
}

// Finish handles PUT /tasks/:id.
//
// @Summary      Mark a task Finished
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Finish(c echo.Context) error {
	task, err := h.service.Finish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ObserveStatusChange(task.Status)
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id and PUT /tasks/:id/delete. The task is kept
// with status Deleted.
//
// @Summary      Soft-delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
// @Router       /tasks/{id}/delete [put]
func (h *TaskHandler) Delete(c echo.Context) error {
	task, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ObserveStatusChange(task.Status)
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateStatus handles POST /update-task-status.
//
// @Summary      Overwrite a task status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      updateStatusRequest  true  "Task id and new status"
// @Success      200   {object}  taskMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /update-task-status [post]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.service.UpdateStatus(c.Request().Context(), req.TaskID, req.Status)
	if err != nil {
		return err
	}
	metrics.ObserveStatusChange(task.Status)
	return c.JSON(http.StatusOK, taskMessageResponse{Message: "Task status updated successfully", Task: toTaskResponse(task)})
}

// Rate handles POST /rate-task/:taskId.
//
// @Summary      Rate a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId  path      string           true  "Task id"
// @Param        body    body      rateTaskRequest  true  "Rating"
// @Success      200     {object}  taskMessageResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /rate-task/{taskId} [post]
func (h *TaskHandler) Rate(c echo.Context) error {
	id := c.Param("taskId")
	if !domain.IsValidID(id) {
		return domain.ErrInvalidID
	}

	var req rateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.service.Rate(c.Request().Context(), id, *req.Rating)
	if err != nil {
		return err
	}
	metrics.TaskRatings.Observe(task.Rating)
	return c.JSON(http.StatusOK, taskMessageResponse{Message: "Task rated successfully", Task: toTaskResponse(task)})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
