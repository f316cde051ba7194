// Package apiconnect wires the investcalc services to Connect handlers and clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/investcalc/pkg/api"
)

const (
	// ProjectionServiceName is the fully-qualified name of the ProjectionService.
	ProjectionServiceName = "investcalc.v1.ProjectionService"
	// TaskServiceName is the fully-qualified name of the TaskService.
	TaskServiceName = "investcalc.v1.TaskService"
)

// Procedure paths, as they appear in the URL.
const (
	ProjectionServiceCalculateProcedure  = "/" + ProjectionServiceName + "/Calculate"
	ProjectionServiceGetResultsProcedure = "/" + ProjectionServiceName + "/GetResults"
	TaskServiceAddTaskProcedure          = "/" + TaskServiceName + "/AddTask"
	TaskServiceCompleteTaskProcedure     = "/" + TaskServiceName + "/CompleteTask"
	TaskServiceListTasksProcedure        = "/" + TaskServiceName + "/ListTasks"
)

// ProjectionServiceHandler is implemented by the projection service.
type ProjectionServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	GetResults(context.Context, *connect.Request[api.GetResultsRequest]) (*connect.Response[api.GetResultsResponse], error)
}

// TaskServiceHandler is implemented by the task service.
type TaskServiceHandler interface {
	AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error)
	CompleteTask(context.Context, *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error)
	ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error)
}

// NewProjectionServiceHandler builds an HTTP handler for svc and returns the
// path to mount it on.
func NewProjectionServiceHandler(svc ProjectionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	calculate := connect.NewUnaryHandler(ProjectionServiceCalculateProcedure, svc.Calculate, opts...)
	getResults := connect.NewUnaryHandler(ProjectionServiceGetResultsProcedure, svc.GetResults, opts...)

	return "/" + ProjectionServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProjectionServiceCalculateProcedure:
			calculate.ServeHTTP(w, r)
		case ProjectionServiceGetResultsProcedure:
			getResults.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NewTaskServiceHandler builds an HTTP handler for svc and returns the path
// to mount it on.
func NewTaskServiceHandler(svc TaskServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	addTask := connect.NewUnaryHandler(TaskServiceAddTaskProcedure, svc.AddTask, opts...)
	completeTask := connect.NewUnaryHandler(TaskServiceCompleteTaskProcedure, svc.CompleteTask, opts...)
	listTasks := connect.NewUnaryHandler(TaskServiceListTasksProcedure, svc.ListTasks, opts...)

	return "/" + TaskServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TaskServiceAddTaskProcedure:
			addTask.ServeHTTP(w, r)
		case TaskServiceCompleteTaskProcedure:
			completeTask.ServeHTTP(w, r)
		case TaskServiceListTasksProcedure:
			listTasks.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func withJSON(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
}

// ProjectionServiceClient calls a remote ProjectionService.
type ProjectionServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	GetResults(context.Context, *connect.Request[api.GetResultsRequest]) (*connect.Response[api.GetResultsResponse], error)
}

type projectionServiceClient struct {
	calculate  *connect.Client[api.CalculateRequest, api.CalculateResponse]
	getResults *connect.Client[api.GetResultsRequest, api.GetResultsResponse]
}

// NewProjectionServiceClient creates a client for the service at baseURL.
func NewProjectionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProjectionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &projectionServiceClient{
		calculate:  connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+ProjectionServiceCalculateProcedure, opts...),
		getResults: connect.NewClient[api.GetResultsRequest, api.GetResultsResponse](httpClient, baseURL+ProjectionServiceGetResultsProcedure, opts...),
	}
}

func (c *projectionServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *projectionServiceClient) GetResults(ctx context.Context, req *connect.Request[api.GetResultsRequest]) (*connect.Response[api.GetResultsResponse], error) {
	return c.getResults.CallUnary(ctx, req)
}

// TaskServiceClient calls a remote TaskService.
type TaskServiceClient interface {
	AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error)
	CompleteTask(context.Context, *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error)
	ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error)
}

type taskServiceClient struct {
	addTask      *connect.Client[api.AddTaskRequest, api.AddTaskResponse]
	completeTask *connect.Client[api.CompleteTaskRequest, api.CompleteTaskResponse]
	listTasks    *connect.Client[api.ListTasksRequest, api.ListTasksResponse]
}

// NewTaskServiceClient creates a client for the service at baseURL.
func NewTaskServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TaskServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &taskServiceClient{
		addTask:      connect.NewClient[api.AddTaskRequest, api.AddTaskResponse](httpClient, baseURL+TaskServiceAddTaskProcedure, opts...),
		completeTask: connect.NewClient[api.CompleteTaskRequest, api.CompleteTaskResponse](httpClient, baseURL+TaskServiceCompleteTaskProcedure, opts...),
		listTasks:    connect.NewClient[api.ListTasksRequest, api.ListTasksResponse](httpClient, baseURL+TaskServiceListTasksProcedure, opts...),
	}
}

func (c *taskServiceClient) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error) {
	return c.addTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) CompleteTask(ctx context.Context, req *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error) {
	return c.completeTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	return c.listTasks.CallUnary(ctx, req)
}
