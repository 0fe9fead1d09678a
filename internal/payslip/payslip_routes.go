package payslip

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	r.GET("/get-payslip-details", handler.GetDetails)
	r.POST("/get-multiple-payslips", handler.GetMultiple)
	r.GET("/get-payslip-pdf", handler.DownloadPDF)
}
