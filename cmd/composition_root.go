package cmd

import (
	"log/slog"
	"time"

	httpadapter "sendit/internal/adapters/in/http"
	"sendit/internal/adapters/out/notifier"
	"sendit/internal/adapters/out/postgres"
	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/application/usecases/queries"
	"sendit/internal/core/ports"
	"sendit/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	emailNotifier := notifier.NewEmailNotifier(notifier.EmailConfig{
		Host:     config.EmailHost,
		Port:     config.EmailPort,
		Username: config.EmailUsername,
		Password: config.EmailPassword,
		From:     config.EmailFrom,
	}, logger)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   emailNotifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestDeliveryChangeCommandHandler() commands.RequestDeliveryChangeCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryChangeCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCorrectDeliveryCommandHandler() commands.CorrectDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCorrectDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRemindPendingDeliveriesCommandHandler() commands.RemindPendingDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindPendingDeliveriesCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetCredentialsQueryHandler() queries.GetCredentialsQueryHandler {
	return queries.NewGetCredentialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackDeliveryQueryHandler() queries.TrackDeliveryQueryHandler {
	return queries.NewTrackDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRidersQueryHandler() queries.GetRidersQueryHandler {
	return queries.NewGetRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTokenService() *httpadapter.TokenService {
	return httpadapter.NewTokenService(c.config.JWTSecret)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateUpdateProfileCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateRequestDeliveryChangeCommandHandler(),
		c.CreateCorrectDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateDeleteDeliveryCommandHandler(),
		c.CreateGetCredentialsQueryHandler(),
		c.CreateGetProfileQueryHandler(),
		c.CreateGetDeliveriesQueryHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateTrackDeliveryQueryHandler(),
		c.CreateGetRidersQueryHandler(),
		c.CreateGetUsersQueryHandler(),
		c.CreateTokenService(),
	)
}

func (c *CompositionRoot) CreateJobManager(reminderAge time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRemindPendingDeliveriesCommandHandler(),
		c.config.PendingReminderCron,
		reminderAge,
		c.logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
