package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/hirematch/engine/pkg/fsx"
	"github.com/hirematch/engine/pkg/fsx/fsxhttp"
	"github.com/hirematch/engine/pkg/fsx/fsxs3"
	"github.com/hirematch/engine/pkg/logx"
	"github.com/hirematch/engine/recruitment/application/applicationapi"
	"github.com/hirematch/engine/recruitment/application/applicationinfra"
	"github.com/hirematch/engine/recruitment/application/applicationsrv"
	"github.com/hirematch/engine/recruitment/candidate/candidateapi"
	"github.com/hirematch/engine/recruitment/candidate/candidateinfra"
	"github.com/hirematch/engine/recruitment/candidate/candidatesrv"
	"github.com/hirematch/engine/recruitment/job/jobapi"
	"github.com/hirematch/engine/recruitment/job/jobinfra"
	"github.com/hirematch/engine/recruitment/job/jobsrv"
	"github.com/hirematch/engine/recruitment/matching/matchengine"
	"github.com/hirematch/engine/recruitment/matching/matchingapi"
	"github.com/hirematch/engine/recruitment/matching/matchinginfra"
	"github.com/hirematch/engine/recruitment/matching/matchingsrv"
	"github.com/hirematch/engine/recruitment/matching/worker"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	JobService         *jobsrv.JobService
	CandidateService   *candidatesrv.CandidateService
	ApplicationService *applicationsrv.ApplicationService
	MatchingService    *matchingsrv.Service

	// Workers
	MatchWorker *worker.MatchWorker

	// API Handlers
	JobHandlers         *jobapi.Handlers
	CandidateHandlers   *candidateapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	MatchingHandlers    *matchingapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")
}

func (c *Container) initServices() {
	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	matchRepo := matchinginfra.NewPostgresMatchRepository(c.DB)

	// --- Queue ---
	queueName := os.Getenv("MATCH_QUEUE")
	if queueName == "" {
		queueName = "matching:runs"
	}
	runQueue := matchinginfra.NewRedisRunQueue(c.Redis, queueName)

	// --- Document Reader ---
	// Stored object keys go to S3; absolute URLs are fetched over HTTP.
	httpReader := fsxhttp.NewHTTPReader(30 * time.Second)
	documentReader := fsx.NewSchemeRouter(c.FileSystem).
		Route("http", httpReader).
		Route("https", httpReader)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo, matchRepo, c.FileSystem)
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, candidateRepo, jobRepo, c.FileSystem)
	c.MatchingService = matchingsrv.NewService(
		jobRepo,
		applicationRepo,
		matchRepo,
		documentReader,
		matchengine.New(),
		runQueue,
	)

	// --- Workers ---
	workers := 2
	if v := os.Getenv("MATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}
	c.MatchWorker = worker.NewMatchWorker(c.MatchingService, runQueue, workers)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.MatchingHandlers = matchingapi.NewHandlers(c.MatchingService)
}
