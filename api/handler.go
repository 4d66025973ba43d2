package api

import (
	"errors"
	"strconv"
	"sync"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/generator"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

var errInvalidFormat = errors.New("invalid request format")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	DynamicPriority(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GenerateProcesses(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *logger.Logger

	mu        sync.Mutex
	generator *generator.Generator
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		generator: generator.New(config.Generator, config.Seed),
		log:       logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "api")),
	}
}

// RegisterRoutes mounts the handler under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/dynamic-priority", handler.DynamicPriority)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/generate", handler.GenerateProcesses)
	}
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, errInvalidFormat
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) reject(ctx *fiber.Ctx, err error) error {
	s.log.Warn(ctx.Path(), " rejecting request: ", err)
	return badRequest(ctx, err.Error())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, fn func([]requests.Job) responses.ScheduleResponse) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.reject(ctx, err)
	}
	response := fn(request.Jobs)
	s.log.Infoln(ctx.Path(), "scheduled", len(request.Jobs), "jobs")
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.reject(ctx, err)
	}
	timeQuantum := request.TimeQuantum
	if timeQuantum == 0 {
		timeQuantum = s.config.RoundRobinTimeQuantum
	}
	response, err := schedulers.ScheduleRoundRobin(request.Jobs, timeQuantum)
	if errors.Is(err, schedulers.ErrInvalidTimeQuantum) {
		return s.reject(ctx, err)
	}
	s.log.Infoln(ctx.Path(), "scheduled", len(request.Jobs), "jobs with timeQuantum =", timeQuantum)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePriority)
}

func (s *SchedulerHandlerImpl) DynamicPriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleDynamicPriority)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.reject(ctx, err)
	}
	return ctx.JSON(schedulers.ScheduleAll(request.Jobs))
}

func (s *SchedulerHandlerImpl) GenerateProcesses(ctx *fiber.Ctx) error {
	n, err := strconv.Atoi(ctx.Query("count", "5"))
	if err != nil {
		return s.reject(ctx, errors.New("count must be a number"))
	}
	s.mu.Lock()
	jobs, err := s.generator.Generate(n)
	s.mu.Unlock()
	if err != nil {
		return s.reject(ctx, err)
	}
	return ctx.JSON(requests.ScheduleRequests{Jobs: jobs})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
