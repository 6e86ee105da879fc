package controller

import "github.com/labstack/echo/v4"

type ProductController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Buy(c echo.Context) error
}
