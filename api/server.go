package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/electrocare/client-gateway/external/repairsvc"
	"github.com/electrocare/client-gateway/geo"
	"github.com/electrocare/client-gateway/logmodule"
	"github.com/electrocare/client-gateway/schema"
	"github.com/electrocare/client-gateway/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Backend marketplace API; the single writer of every record
	backend repairsvc.Client

	// Address resolution chain for manual-mode submissions
	resolver *geo.ChainResolver

	// JWT private key for session tokens
	jwtPrivateKey *rsa.PrivateKey

	// One in-flight call per (request, action); the client-side analogue
	// of disabling the button while its own call runs
	inflight *actionGuard
}

// NewServer new instance of server
func NewServer(backend repairsvc.Client, resolver *geo.ChainResolver, jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		backend:       backend,
		resolver:      resolver,
		jwtPrivateKey: jwtKey,
		inflight:      newActionGuard(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.POST("/auth", s.requestJWT)

	accountRoute := apiRoute.Group("/auth")
	{
		accountRoute.POST("/register", s.register)
		accountRoute.POST("/verify-email", s.verifyEmail)
		accountRoute.POST("/resend-verification", s.resendVerification)
		accountRoute.POST("/forgot-password", s.forgotPassword)
		accountRoute.POST("/reset-password", s.resetPassword)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	apiRoute.POST("/troubleshoot", s.troubleshoot)

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.requestDetail)

		requestRoute.POST("/:requestID/accept", s.acceptRequest)
		requestRoute.POST("/:requestID/travel", s.startTravel)
		requestRoute.POST("/:requestID/estimate", s.submitEstimate)
		requestRoute.POST("/:requestID/approve", s.approveEstimate)
		requestRoute.POST("/:requestID/decline", s.declineEstimate)
		requestRoute.POST("/:requestID/cancel", s.cancelRequest)
		requestRoute.POST("/:requestID/complete", s.completeJob)
		requestRoute.POST("/:requestID/verify-otp", s.verifyOTP)
		requestRoute.POST("/:requestID/feedback", s.submitFeedback)
	}

	applianceRoute := apiRoute.Group("/appliances")
	{
		applianceRoute.GET("/my", s.myAppliances)
	}

	subscriptionRoute := apiRoute.Group("/subscriptions")
	{
		subscriptionRoute.GET("/my", s.mySubscription)
		subscriptionRoute.POST("/buy", s.buySubscription)
	}

	technicianRoute := apiRoute.Group("/technician")
	technicianRoute.Use(s.requireRole(schema.RoleTechnician))
	{
		technicianRoute.POST("/documents", s.uploadDocuments)
		technicianRoute.POST("/location", s.updateLocation)
		technicianRoute.GET("/earnings", s.earnings)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.requireRole(schema.RoleAdmin))
	{
		adminRoute.GET("/users", s.adminListUsers)
		adminRoute.GET("/technicians", s.adminListTechnicians)
		adminRoute.GET("/requests", s.adminListRequests)
		adminRoute.GET("/appliances", s.adminListAppliances)
		adminRoute.DELETE("/appliances/:applianceID", s.adminDeleteAppliance)
		adminRoute.PATCH("/technicians/:technicianID/verification", s.adminSetVerification)
		adminRoute.GET("/reports/:reportType/export", s.exportReport)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

// localize renders a user-facing message in the caller's language. It is
// display copy only; handlers never branch on it.
func localize(c *gin.Context, messageID string, data map[string]interface{}) string {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.WithError(err).Warn("localize message: ", messageID)
		return ""
	}
	return msg
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
