package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/common"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/config"
	"github.com/iulianpascalau/rabbitmq-prtg-sensor/services/sensor/request"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const shutdownTimeout = 5 * time.Second

var log = logger.GetOrCreate("api")

type server struct {
	router     *gin.Engine
	httpServer *http.Server
	extractor  Extractor
	broker     config.BrokerConfig
	listenAddr string
	mutStart   sync.Mutex
	wg         sync.WaitGroup
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress string
	Broker        config.BrokerConfig
	Extractor     Extractor
}

// NewServer initializes the Gin engine and mounts the sensor routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Extractor) {
		return nil, errors.New("nil extractor")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	// a %2F encoded vhost must stay a single path segment
	router.UseRawPath = true
	router.UnescapePathValues = true

	s := &server{
		router:     router,
		extractor:  args.Extractor,
		broker:     args.Broker,
		listenAddr: args.ListenAddress,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	sensor := s.router.Group("/sensor")
	{
		sensor.GET("/:type", s.handleSensor)
		sensor.GET("/:type/:host", s.handleSensor)
		sensor.GET("/:type/:host/:name", s.handleSensor)
	}
}

// Start listens and serves connections
func (s *server) Start() {
	s.mutStart.Lock()
	defer s.mutStart.Unlock()

	if s.httpServer != nil {
		return
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "address", s.listenAddr, "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.router,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		errServe := s.httpServer.Serve(ln)
		if errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			log.Error("http server failed", "error", errServe)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	s.mutStart.Lock()
	defer s.mutStart.Unlock()

	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	s.mutStart.Lock()
	defer s.mutStart.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		err := s.httpServer.Shutdown(ctx)
		if err != nil {
			return err
		}
	}
	s.wg.Wait()
	s.httpServer = nil

	return nil
}

func (s *server) handleSensor(c *gin.Context) {
	args := []string{s.broker.ServerAndPort, s.broker.User, s.broker.Password, c.Param("type")}
	if host, ok := c.Params.Get("host"); ok {
		args = append(args, host)
	}
	if name, ok := c.Params.Get("name"); ok {
		args = append(args, name)
	}

	descriptor, err := request.NewRequestDescriptor(args)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := s.extractor.Extract(c.Request.Context(), descriptor)
	if errors.Is(err, common.ErrUnsupportedResourceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Warn("sensor request failed", "type", descriptor.Type, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *server) IsInterfaceNil() bool {
	return s == nil
}
