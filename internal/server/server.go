package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/bookdesk/internal/report"
	"github.com/avolkov/bookdesk/internal/store"
)

// Server exposes a read-only API over a store snapshot loaded at
// startup. Handlers only read, so the single-writer model holds.
type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer creates a new server instance
func NewServer(st *store.Store) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		store:  st,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/customers", s.listCustomers)
		api.GET("/customers/:id", s.getCustomer)
		api.GET("/customers/:id/orders", s.getCustomerOrders)
		api.GET("/customers/:id/stats", s.getCustomerStats)
		api.GET("/reports/:kind", s.getReport)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "bookdesk",
		"customers": s.store.Customers.Len(),
		"orders":    s.store.Orders.Len(),
	})
}

// listCustomers returns the directory, optionally filtered by ?q=
func (s *Server) listCustomers(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, s.store.Customers.Search(q))
		return
	}
	c.JSON(http.StatusOK, s.store.Customers.All())
}

func (s *Server) getCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	customer, ok := s.store.Customers.FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) getCustomerOrders(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	if _, ok := s.store.Customers.FindByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, s.store.Orders.ByCustomer(id))
}

func (s *Server) getCustomerStats(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	if _, ok := s.store.Customers.FindByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, s.store.Orders.Statistics(id))
}

// getReport renders one of the plain-text reports. Date range comes
// from ?from= and ?to= (YYYY-MM-DD, both optional).
func (s *Server) getReport(c *gin.Context) {
	kind, err := report.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kinds": report.Kinds()})
		return
	}

	rng := report.Range{From: c.Query("from"), To: c.Query("to")}
	text := report.Generate(kind, s.store.Customers.All(), s.store.Orders.All(), rng)
	c.String(http.StatusOK, text)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
