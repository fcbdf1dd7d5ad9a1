package server

import (
	"net/http"
	"strconv"
	"strings"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	orderdomain "github.com/autoparts/catalog/internal/order/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

const adminPageLimit = 50

type adminProductRow struct {
	ID         string
	Name       string
	PartNumber string
	OEMNumber  string
	PriceCents int
	Active     bool
}

func (s *Server) AdminProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	ctx := c.Request.Context()

	var rows []adminProductRow
	var mode string

	if q == "" {
		items, err := s.catalogSvc.List(ctx, catalogdomain.ListRequest{Limit: adminPageLimit})
		if err != nil {
			AbortWithError(c, err)
			return
		}
		for _, item := range items {
			rows = append(rows, adminProductRow{
				ID:         item.ID,
				Name:       item.Name,
				PartNumber: item.PartNumber,
				OEMNumber:  item.OEMNumber,
				PriceCents: item.PriceCents,
				Active:     item.Active,
			})
		}
	} else {
		result, err := s.searchSvc.Search(ctx, q, adminPageLimit)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		mode = string(result.Mode)
		for _, item := range result.Items {
			rows = append(rows, adminProductRow{
				ID:         snowflake.ID(item.ID).String(),
				Name:       item.Name,
				PartNumber: item.PartNumber,
				OEMNumber:  item.OEMNumber,
				PriceCents: item.PriceCents,
				Active:     item.Active,
			})
		}
	}

	c.HTML(http.StatusOK, "admin_products.tmpl", gin.H{
		"Query":    q,
		"Mode":     mode,
		"Products": rows,
	})
}

func (s *Server) AdminNewProductForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_product_form.tmpl", gin.H{
		"Title":  "Add product",
		"Action": "/admin/products/new",
		"Product": catalogdomain.Response{
			PriceCents: 1000,
			Active:     true,
		},
		"CrossRefs": "",
	})
}

func (s *Server) AdminCreateProduct(c *gin.Context) {
	req, err := productRequestFromForm(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if _, err := s.catalogSvc.Create(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products")
}

func (s *Server) AdminEditProductForm(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	product, err := s.catalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_product_form.tmpl", gin.H{
		"Title":     "Edit product",
		"Action":    "/admin/products/" + id + "/edit",
		"Product":   product,
		"CrossRefs": strings.Join(product.CrossRefs, "\n"),
	})
}

func (s *Server) AdminUpdateProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	req, err := productRequestFromForm(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if _, err := s.catalogSvc.Update(c.Request.Context(), id, req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products")
}

func (s *Server) AdminOrders(c *gin.Context) {
	orders, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListRequest{Limit: adminPageLimit})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_orders.tmpl", gin.H{"Orders": orders})
}

func (s *Server) AdminOrderDetails(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	details, err := s.orderSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_order_details.tmpl", gin.H{
		"Order":    details,
		"Statuses": []string{orderdomain.StatusNew, orderdomain.StatusConfirmed, orderdomain.StatusDone, orderdomain.StatusCancelled},
	})
}

func (s *Server) AdminUpdateOrderStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	status := c.PostForm("status")

	if err := s.orderSvc.UpdateStatus(c.Request.Context(), id, status); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/orders/"+id)
}

func productRequestFromForm(c *gin.Context) (catalogdomain.CreateRequest, error) {
	priceCents, err := strconv.Atoi(strings.TrimSpace(c.PostForm("price_cents")))
	if err != nil {
		return catalogdomain.CreateRequest{}, newValidationError("price_cents", "invalid_price", "invalid price")
	}

	active := true
	if raw := strings.TrimSpace(c.PostForm("active")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return catalogdomain.CreateRequest{}, newValidationError("active", "invalid_active", "invalid active")
		}
		active = parsed
	}

	var crossRefs []string
	for _, line := range strings.Split(c.PostForm("cross_refs"), "\n") {
		if value := strings.TrimSpace(line); value != "" {
			crossRefs = append(crossRefs, value)
		}
	}

	return catalogdomain.CreateRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		PartNumber:  c.PostForm("part_number"),
		OEMNumber:   c.PostForm("oem_number"),
		PriceCents:  priceCents,
		Active:      &active,
		CrossRefs:   crossRefs,
	}, nil
}
