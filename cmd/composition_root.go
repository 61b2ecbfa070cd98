package cmd

import (
	"log/slog"

	httpin "tours/internal/adapters/in/http"
	"tours/internal/adapters/out/mail"
	"tours/internal/adapters/out/metrics"
	"tours/internal/adapters/out/postgres"
	"tours/internal/core/application/notifications"
	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/services"
	"tours/internal/core/ports"
	"tours/internal/jobs"

	"gorm.io/gorm"
)

const notificationTaskTimeout = 2 * mail.DefaultTimeout

// CompositionRoot wires adapters, use cases and background jobs for one process.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	workerPool *jobs.WorkerPool
	dispatcher *notifications.Dispatcher
	scheduler  *commands.QueueDeliveryScheduler
	metrics    *metrics.Metrics
}

// NewCompositionRoot uses mailer for outbound email; nil selects SMTP from cfg.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, mailer ports.Mailer, logger *slog.Logger) (*CompositionRoot, error) {
	renderer, err := mail.NewRenderer(mail.DefaultBrand)
	if err != nil {
		return nil, err
	}
	if mailer == nil {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTPServer,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		workerPool: jobs.NewWorkerPool(cfg.NotificationWorkers, cfg.NotificationQueueSize, notificationTaskTimeout, logger),
		dispatcher: notifications.NewDispatcher(renderer, mailer, cfg.AdminEmail, logger),
		metrics:    metrics.New(),
	}
	c.metrics.RegisterQueueDepth(c.workerPool.Pending)
	c.scheduler = commands.NewQueueDeliveryScheduler(c.workerPool, c.CreateDispatchNotificationCommandHandler(), logger)
	return c, nil
}

// Metrics is shared by every handler built from this root.
func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(
		c.bookingUoWFactory(), services.NewReferenceCodeAllocator(), c.scheduler, c.logger)
}

func (c *CompositionRoot) CreateCreateTourCommandHandler() commands.CreateTourCommandHandler {
	return commands.NewCreateTourCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSendContactMessageCommandHandler() commands.SendContactMessageCommandHandler {
	return commands.NewSendContactMessageCommandHandler(
		c.metrics.CountContactDispatch(c.dispatcher), c.workerPool, c.logger)
}

func (c *CompositionRoot) CreateDispatchNotificationCommandHandler() commands.DispatchNotificationCommandHandler {
	return commands.NewDispatchNotificationCommandHandler(
		c.deliveryUoWFactory(), c.metrics.CountBookingDispatch(c.dispatcher), c.cfg.NotificationMaxAttempts, c.logger)
}

func (c *CompositionRoot) CreateRetryNotificationsCommandHandler() commands.RetryNotificationsCommandHandler {
	return commands.NewRetryNotificationsCommandHandler(
		c.deliveryUoWFactory(), c.scheduler, c.cfg.NotificationMaxAttempts, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retryHandler := c.CreateRetryNotificationsCommandHandler()
	retryJob := jobs.NewNotificationRetryJob(
		retryHandler, c.cfg.NotificationRetrySchedule, c.cfg.NotificationStaleAfter, c.logger)
	return jobs.NewJobManager(c.workerPool, retryJob)
}

// CreateHandlers returns every use case served over HTTP.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateTour:         c.CreateCreateTourCommandHandler(),
		CreateLocation:     c.CreateCreateLocationCommandHandler(),
		CreateBooking:      c.metrics.CountBookings(c.CreateCreateBookingCommandHandler()),
		SendContactMessage: c.CreateSendContactMessageCommandHandler(),

		GetTour:           queries.NewGetTourQueryHandler(c.gormDB),
		ListTours:         queries.NewListToursQueryHandler(c.gormDB),
		ListCountries:     queries.NewListCountriesQueryHandler(c.gormDB),
		ListTourLocations: queries.NewListTourLocationsQueryHandler(c.gormDB),
		ListLocations:     queries.NewListLocationsQueryHandler(c.gormDB),
		GetBooking:        queries.NewGetBookingQueryHandler(c.gormDB),
		ListBookings:      queries.NewListBookingsQueryHandler(c.gormDB),

		AnalyticsOverview:    queries.NewAnalyticsOverviewQueryHandler(c.gormDB),
		BookingTrends:        queries.NewBookingTrendsQueryHandler(c.gormDB),
		PopularTours:         queries.NewPopularToursQueryHandler(c.gormDB),
		CustomerDemographics: queries.NewCustomerDemographicsQueryHandler(c.gormDB),
	}
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
