package app

import (
	"context"

	"github.com/aq2208/gshop-api/configs"
	"github.com/aq2208/gshop-api/internal/adapter/cache"
	httpadapter "github.com/aq2208/gshop-api/internal/adapter/http"
	"github.com/aq2208/gshop-api/internal/adapter/http/middleware"
	"github.com/aq2208/gshop-api/internal/adapter/kafka"
	"github.com/aq2208/gshop-api/internal/adapter/queue"
	"github.com/aq2208/gshop-api/internal/adapter/repo"
	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/logging"
	"github.com/aq2208/gshop-api/internal/security"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile)
	l := logging.New("app")

	codec, err := security.NewTokenCodec([]byte(cfg.Security.JWTSecret), cfg.Security.Algorithm)
	if err != nil {
		return nil, nil, err
	}

	// credential store; real provisioning happens outside this service
	users, err := seedUsers()
	if err != nil {
		return nil, nil, err
	}

	var (
		productRepo usecase.ProductRepo
		orderRepo   usecase.OrderRepo
		cleanups    []func()
	)
	switch cfg.Store.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, err
		}
		productRepo = cache.NewRedisProductRepo(rdb)
		orderRepo = cache.NewRedisOrderRepo(rdb)
		cleanups = append(cleanups, func() { _ = rdb.Close() })
	default:
		productRepo = repo.NewMemoryProductRepo()
		orderRepo = repo.NewMemoryOrderRepo()
	}

	var events usecase.EventPublisher = usecase.NopPublisher{}
	if cfg.Rabbit.URL != "" {
		conn, err := amqp.Dial(cfg.Rabbit.URL)
		if err != nil {
			return nil, nil, err
		}
		ch, err := conn.Channel()
		if err != nil {
			return nil, nil, err
		}
		producer, err := queue.NewRabbitProducer(ch)
		if err != nil {
			return nil, nil, err
		}
		events = producer
		cleanups = append(cleanups, func() { _ = conn.Close() })
	}

	if len(cfg.Kafka.Brokers) > 0 {
		if err := setupKafkaListener(cfg, orderRepo); err != nil {
			return nil, nil, err
		}
	}

	auth := usecase.NewAuthenticator(users, security.BcryptVerifier{})
	sessions := usecase.NewSessionResolver(codec, users)
	products := usecase.NewProducts(productRepo)
	createOrder := usecase.NewCreateOrder(orderRepo, productRepo, events)
	getOrder := usecase.NewGetOrder(orderRepo)

	ah := httpadapter.NewAuthHandler(auth, codec, cfg.Security.TTL)
	ph := httpadapter.NewProductHandler(products)
	oh := httpadapter.NewOrderHandler(createOrder, getOrder)
	authn := middleware.NewAuthn(sessions)
	router := httpadapter.NewRouter(ah, ph, oh, authn)

	l.Info("shop-api wired", "store", cfg.Store.Backend)

	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}
	return &App{Router: router}, cleanup, nil
}

// seedUsers fills the in-process credential store with the demo account.
func seedUsers() (*repo.MemoryUserRepo, error) {
	hash, err := security.HashPassword("secret")
	if err != nil {
		return nil, err
	}
	return repo.NewMemoryUserRepo(domain.User{
		Username:       "johndoe",
		FullName:       "John Doe",
		Email:          "johndoe@example.com",
		HashedPassword: hash,
		Disabled:       false,
	}), nil
}

func setupKafkaListener(cfg configs.Config, orders usecase.OrderRepo) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	h := kafka.NewOrderStatusChangedHandler(orders)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.Topic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil && err != context.Canceled {
			logging.New("kafka").Error("consumer stopped", "err", err)
		}
	}()
	return nil
}
