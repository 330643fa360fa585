package router

import (
	"lendkart/loan_broker/configs"
	"lendkart/loan_broker/internal/app/handlers"
	"lendkart/loan_broker/internal/app/middleware"
	"lendkart/loan_broker/internal/pkg/services"
	"lendkart/loan_broker/internal/pkg/store"
	"lendkart/loan_broker/internal/pkg/store/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(redisClient *redis.Client) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Catalog cache is optional; a nil Redis client means every listing
	// goes straight to MongoDB.
	var catalogCache services.RedisStoreOperations
	if redisClient != nil {
		catalogCache = repository.NewRedisStoreAdapter(redisClient)
	}

	loanProductsRepo := store.NewLoanProductsRepository()
	enquiriesRepo := store.NewEnquiriesRepository()
	membersRepo := store.NewMembersRepository()

	validationService := services.NewValidationService()
	catalogService := services.NewCatalogService(loanProductsRepo, catalogCache)
	enquiryService := services.NewEnquiryService(enquiriesRepo, catalogService)
	memberService := services.NewMemberService(membersRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService, validationService)
	memberHandler := handlers.NewMemberHandler(memberService, validationService)

	r.GET("/", catalogHandler.Welcome)
	r.GET("/allservices", catalogHandler.AllServices)
	r.GET("/service/:type", catalogHandler.ServiceByType)
	r.POST("/service/:type/form", enquiryHandler.SubmitEnquiry)
	r.POST("/service/:type/calculate", enquiryHandler.CalculateInterest)
	r.POST("/service/:type/remittance", enquiryHandler.RequestRemittance)
	r.POST("/member", memberHandler.Register)
	r.PUT("/updaterequest", enquiryHandler.UpdateEnquiry)
	r.PUT("/updatepassword", memberHandler.UpdatePassword)
	r.DELETE("/deleterequest", enquiryHandler.DeleteEnquiry)
	r.DELETE("/cancelmember", memberHandler.CancelMembership)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
