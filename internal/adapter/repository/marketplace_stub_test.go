package repository_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// marketplaceStub implements the consumed slice of the marketplace API.
// Products are stored as loose maps so PATCH merges only the supplied
// fields, the way the real backend does.
type marketplaceStub struct {
	server *httptest.Server

	products map[string]map[string]interface{}
	order    []string

	accessToken  string
	profile      map[string]interface{}
	lastRegister map[string]interface{}
	views        map[string]int

	// request log for call-shape assertions
	calls []string
}

func newMarketplaceStub() *marketplaceStub {
	s := &marketplaceStub{
		products:    map[string]map[string]interface{}{},
		accessToken: "A",
		profile: map[string]interface{}{
			"id":              uuid.NewString(),
			"username":        "alice",
			"full_name":       "Alice Mason",
			"email":           "alice@gmu.edu",
			"active_listings": 0,
			"total_sales":     0,
			"seller_rating":   nil,
		},
		views: map[string]int{},
	}

	e := echo.New()

	e.POST("/token/", func(c echo.Context) error {
		s.record(c)
		var creds map[string]string
		if err := c.Bind(&creds); err != nil {
			return err
		}
		if creds["username"] != "alice" || creds["password"] != "pw" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "No active account found with the given credentials"})
		}
		return c.JSON(http.StatusOK, map[string]string{"access": "A", "refresh": "R"})
	})

	e.POST("/users/register/", func(c echo.Context) error {
		s.record(c)
		var body map[string]interface{}
		if err := c.Bind(&body); err != nil {
			return err
		}
		s.lastRegister = body
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"id":        uuid.NewString(),
			"username":  body["username"],
			"email":     body["email"],
			"full_name": body["full_name"],
		})
	})

	e.GET("/users/profile/", func(c echo.Context) error {
		s.record(c)
		if !s.authorized(c) {
			return unauthorized(c)
		}
		return c.JSON(http.StatusOK, s.profile)
	})

	e.PATCH("/users/profile/", func(c echo.Context) error {
		s.record(c)
		if !s.authorized(c) {
			return unauthorized(c)
		}
		var patch map[string]interface{}
		if err := c.Bind(&patch); err != nil {
			return err
		}
		for key, value := range patch {
			s.profile[key] = value
		}
		return c.JSON(http.StatusOK, s.profile)
	})

	e.GET("/users/:id/", func(c echo.Context) error {
		s.record(c)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"id":       c.Param("id"),
			"username": "bob",
		})
	})

	e.GET("/products/", func(c echo.Context) error {
		s.record(c)
		return c.JSON(http.StatusOK, s.listProducts(c.QueryParam("status")))
	})

	e.GET("/products/:id/", func(c echo.Context) error {
		s.record(c)
		product, ok := s.products[c.Param("id")]
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
		}
		return c.JSON(http.StatusOK, product)
	})

	e.GET("/products/my_products/", func(c echo.Context) error {
		s.record(c)
		if !s.authorized(c) {
			return unauthorized(c)
		}
		return c.JSON(http.StatusOK, s.listProducts(""))
	})

	e.POST("/products/", func(c echo.Context) error {
		s.record(c)
		if !s.authorized(c) {
			return unauthorized(c)
		}
		var body map[string]interface{}
		if err := c.Bind(&body); err != nil {
			return err
		}
		if name, _ := body["name"].(string); name == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "name is required"})
		}
		id := uuid.NewString()
		body["id"] = id
		body["views"] = 0
		s.products[id] = body
		s.order = append(s.order, id)
		return c.JSON(http.StatusCreated, body)
	})

	e.PATCH("/products/:id/", func(c echo.Context) error {
		s.record(c)
		if !s.authorized(c) {
			return unauthorized(c)
		}
		product, ok := s.products[c.Param("id")]
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
		}
		var patch map[string]interface{}
		if err := c.Bind(&patch); err != nil {
			return err
		}
		for key, value := range patch {
			product[key] = value
		}
		return c.JSON(http.StatusOK, product)
	})

	e.DELETE("/products/:id/", func(c echo.Context) error {
		s.record(c)
		if !s.authorized(c) {
			return unauthorized(c)
		}
		id := c.Param("id")
		if _, ok := s.products[id]; !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
		}
		delete(s.products, id)
		kept := s.order[:0]
		for _, existing := range s.order {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		s.order = kept
		return c.NoContent(http.StatusNoContent)
	})

	e.POST("/products/:id/increment_views/", func(c echo.Context) error {
		s.record(c)
		s.views[c.Param("id")]++
		return c.JSON(http.StatusOK, map[string]int{"views": s.views[c.Param("id")]})
	})

	s.server = httptest.NewServer(e)
	return s
}

func (s *marketplaceStub) close() {
	s.server.Close()
}

func (s *marketplaceStub) record(c echo.Context) {
	s.calls = append(s.calls, c.Request().Method+" "+c.Request().URL.RequestURI())
}

func (s *marketplaceStub) authorized(c echo.Context) bool {
	return c.Request().Header.Get("Authorization") == "Bearer "+s.accessToken
}

func (s *marketplaceStub) listProducts(status string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(s.order))
	for _, id := range s.order {
		product := s.products[id]
		if status != "" && product["status"] != status {
			continue
		}
		out = append(out, product)
	}
	return out
}

func (s *marketplaceStub) calledPaths(prefix string) []string {
	var out []string
	for _, call := range s.calls {
		if strings.HasPrefix(call, prefix) {
			out = append(out, call)
		}
	}
	return out
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Authentication credentials were not provided."})
}
