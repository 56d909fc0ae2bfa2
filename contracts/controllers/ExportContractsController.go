package controllers

import (
	"fmt"
	"strings"
	"time"

	"licensing-backend/config"
	"licensing-backend/contracts/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportSoftwareContractsController streams every contract of a software as
// an xlsx workbook.
func (cc *ContractController) ExportSoftwareContractsController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	software, rows, err := cc.Contracts.SoftwareContractsReport(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}

	cells := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, row.Cells())
	}

	file, err := utils.GenerateExcel("Contracts", services.ContractReportHeaders, cells)
	if err != nil {
		return utils.RespondError(c, utils.NewInternalError("could not build export", err))
	}

	filename := fmt.Sprintf("contracts_%s_%s.xlsx",
		strings.ReplaceAll(strings.ToLower(software.Name), " ", "_"),
		time.Now().Format("20060102"))
	config.Logger.Info("Contracts exported", zap.String("software_id", id.String()), zap.Int("rows", len(rows)))

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(file)
}
