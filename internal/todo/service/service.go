// Package service applies list and todo operations to a session's
// collection and reports them to audit, metrics and tracing.
//
// The collection is passed explicitly to every call; the service holds no
// per-user state.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"todolists/internal/audit"
	"todolists/internal/todo/metrics"
	"todolists/internal/todo/models"
	platformstrings "todolists/pkg/platform/strings"
	"todolists/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AuditPublisher

const tracerName = "todolists/internal/todo/service"

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service orchestrates list and todo mutations.
type Service struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the global otel tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateList adds a list named name. Surrounding ASCII whitespace and NUL
// bytes are ignored.
func (s *Service) CreateList(ctx context.Context, lists *models.Lists, name string) (*models.List, error) {
	ctx, end := s.span(ctx, "CreateList")
	name = platformstrings.TrimASCII(name)

	list, err := lists.Create(name)
	if err != nil {
		s.rejected(ctx, "create_list", err)
		end(err)
		return nil, err
	}
	s.emit(ctx, audit.Event{Action: audit.ActionListCreated, ListID: list.ID, Detail: list.Name})
	s.metrics.IncrementListsCreated()
	end(nil, attribute.Int("list.id", list.ID))
	return list, nil
}

// FindList looks up a list by id.
func (s *Service) FindList(ctx context.Context, lists *models.Lists, id int) (*models.List, error) {
	return lists.Find(id)
}

// RenameList renames list id.
func (s *Service) RenameList(ctx context.Context, lists *models.Lists, id int, name string) error {
	ctx, end := s.span(ctx, "RenameList", attribute.Int("list.id", id))
	name = platformstrings.TrimASCII(name)

	if err := lists.Rename(id, name); err != nil {
		s.rejected(ctx, "rename_list", err)
		end(err)
		return err
	}
	s.emit(ctx, audit.Event{Action: audit.ActionListRenamed, ListID: id, Detail: name})
	end(nil)
	return nil
}

// DeleteList removes list id. Deleting a missing list succeeds silently.
func (s *Service) DeleteList(ctx context.Context, lists *models.Lists, id int) {
	ctx, end := s.span(ctx, "DeleteList", attribute.Int("list.id", id))
	defer end(nil)

	if _, err := lists.Find(id); err != nil {
		return
	}
	lists.Delete(id)
	s.emit(ctx, audit.Event{Action: audit.ActionListDeleted, ListID: id})
	s.metrics.IncrementListsDeleted()
}

// AddTodo appends a todo to list listID.
func (s *Service) AddTodo(ctx context.Context, lists *models.Lists, listID int, name string) (*models.Todo, error) {
	ctx, end := s.span(ctx, "AddTodo", attribute.Int("list.id", listID))
	name = platformstrings.TrimASCII(name)

	list, err := lists.Find(listID)
	if err != nil {
		end(err)
		return nil, err
	}
	todo, err := list.AddTodo(name)
	if err != nil {
		s.rejected(ctx, "add_todo", err)
		end(err)
		return nil, err
	}
	s.emit(ctx, audit.Event{Action: audit.ActionTodoAdded, ListID: listID, TodoID: todo.ID, Detail: todo.Name})
	s.metrics.IncrementTodosAdded()
	end(nil, attribute.Int("todo.id", todo.ID))
	return todo, nil
}

// DeleteTodo removes a todo. A missing todo is a no-op; a missing list is
// not found.
func (s *Service) DeleteTodo(ctx context.Context, lists *models.Lists, listID, todoID int) error {
	ctx, end := s.span(ctx, "DeleteTodo", attribute.Int("list.id", listID), attribute.Int("todo.id", todoID))

	list, err := lists.Find(listID)
	if err != nil {
		end(err)
		return err
	}
	if _, err := list.FindTodo(todoID); err == nil {
		list.DeleteTodo(todoID)
		s.emit(ctx, audit.Event{Action: audit.ActionTodoDeleted, ListID: listID, TodoID: todoID})
	}
	end(nil)
	return nil
}

// SetTodoCompleted updates one todo's completion flag.
func (s *Service) SetTodoCompleted(ctx context.Context, lists *models.Lists, listID, todoID int, completed bool) error {
	ctx, end := s.span(ctx, "SetTodoCompleted",
		attribute.Int("list.id", listID),
		attribute.Int("todo.id", todoID),
		attribute.Bool("todo.completed", completed),
	)

	list, err := lists.Find(listID)
	if err != nil {
		end(err)
		return err
	}
	todo, err := list.FindTodo(todoID)
	if err != nil {
		end(err)
		return err
	}
	wasCompleted := todo.Completed
	if err := list.SetCompleted(todoID, completed); err != nil {
		end(err)
		return err
	}

	action := audit.ActionTodoReopened
	if completed {
		action = audit.ActionTodoCompleted
		if !wasCompleted {
			s.metrics.AddTodosCompleted(1)
		}
	}
	s.emit(ctx, audit.Event{Action: action, ListID: listID, TodoID: todoID})
	end(nil)
	return nil
}

// CompleteAll marks every todo in list listID complete.
func (s *Service) CompleteAll(ctx context.Context, lists *models.Lists, listID int) error {
	ctx, end := s.span(ctx, "CompleteAll", attribute.Int("list.id", listID))

	list, err := lists.Find(listID)
	if err != nil {
		end(err)
		return err
	}
	remaining := list.TodosRemainingCount()
	list.CompleteAll()
	s.metrics.AddTodosCompleted(remaining)
	s.emit(ctx, audit.Event{Action: audit.ActionListCompletedAll, ListID: listID})
	end(nil)
	return nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	s.auditPublisher.Emit(ctx, event)
}

func (s *Service) rejected(ctx context.Context, operation string, err error) {
	if !models.IsValidation(err) {
		return
	}
	s.metrics.IncrementValidationFailure(operation)
	s.logger.WarnContext(ctx, "rejected todo input",
		"request_id", requestcontext.RequestID(ctx),
		"operation", operation,
		"reason", err.Error(),
	)
}

// span starts a trace span. The returned func ends it, marking user errors
// and recording extra attributes learned during the operation.
func (s *Service) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error, ...attribute.KeyValue)) {
	ctx, span := s.tracer.Start(ctx, "todo."+name)
	span.SetAttributes(attrs...)
	return ctx, func(err error, extra ...attribute.KeyValue) {
		span.SetAttributes(extra...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
