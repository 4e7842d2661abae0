package wire

import (
	"GrowAGram/internal/api"
	"GrowAGram/internal/api/config"
	"GrowAGram/internal/api/handler"
	"GrowAGram/internal/job"
	"GrowAGram/internal/pkg/cron"
	"GrowAGram/internal/pkg/es"
	"GrowAGram/internal/pkg/kafka"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/seedfinder"
	"GrowAGram/internal/repository"
	"GrowAGram/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager // 未启用 Kafka 时为 nil
	Producer     *kafka.NotificationProducer
}

func BuildApplication(db *gorm.DB, mongoDB *mongodb.Database, cfg *config.Config) (*ApplicationContainer, error) {
	loc := cfg.Timeline.MustLoc()

	userRepo := repository.NewUserRepo(db)
	reportRepo := repository.NewReportRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	strainRepo := repository.NewStrainRepo(db)
	notificationRepo := mongo.NewNotificationRepo(mongoDB)

	var searchRepo es.ReportRepo
	if es.Client != nil {
		searchRepo = es.NewReportRepo(es.Client)
	}

	app := &ApplicationContainer{DB: db}

	var publisher service.EventPublisher
	if cfg.Kafka.Enable {
		producer, err := kafka.NewNotificationProducer(cfg)
		if err != nil {
			return nil, err
		}
		kafkaMgr, err := kafka.NewConsumerManager(cfg, notificationRepo)
		if err != nil {
			_ = producer.Close()
			return nil, err
		}
		app.Producer = producer
		app.KafkaManager = kafkaMgr
		publisher = producer
	} else {
		log.Info("Kafka disabled, notifications are written directly")
		publisher = service.NewDirectPublisher(notificationRepo)
	}

	cache := service.NewRedisCache()
	store := service.NewMinioStore()
	registry := service.NewMediaRegistry(store)

	userService := service.NewUserService(userRepo, cache)
	reportService := service.NewReportService(reportRepo, postRepo, searchRepo, registry, publisher, loc)
	postService := service.NewPostService(postRepo, reportRepo, registry, publisher, loc)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, publisher)
	likeService := service.NewLikeService(likeRepo, reportRepo, postRepo, commentRepo, cache, publisher)
	strainService := service.NewStrainService(strainRepo, seedfinder.NewClient(cfg.Seedfinder), cache)
	mediaService := service.NewMediaService(store, registry, cfg.Upload.MaxImageBytes)
	notificationService := service.NewNotificationService(notificationRepo)
	timelineService := service.NewTimelineService(loc)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		ReportHandler:       handler.NewReportHandler(reportService),
		PostHandler:         handler.NewPostHandler(postService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		LikeHandler:         handler.NewLikeHandler(likeService),
		StrainHandler:       handler.NewStrainHandler(strainService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		TimelineHandler:     handler.NewTimelineHandler(timelineService),
	}
	app.Router = api.SetupRouter(handlers, cfg.Logstash.Index, cfg.Server.AllowedOrigins)

	app.CronMgr = cron.NewCronManager(
		job.NewMediaCleanupJob(mediaService),
		job.NewStrainSyncJob(strainService),
	)
	return app, nil
}
