package checkin

import (
	"fmt"
	"strconv"

	"buqian/dao/mysql"
	"buqian/model/checkin"
	"buqian/model/common/request"
	response2 "buqian/model/common/response"
	"buqian/response"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// ListCheckinRuns 分页查询补签任务历史
func ListCheckinRuns(c *gin.Context) {
	var pageInfo request.PageInfo
	err := c.ShouldBindQuery(&pageInfo)
	if err != nil {
		response.FailWithMessage("分页参数有误", c)
		return
	}
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	list, total, err := mysql.ListCheckinRuns(userId, pageInfo)
	if err != nil {
		zap.L().Error("查询补签历史失败", zap.String("userid", userId), zap.Error(err))
		response.FailWithMessage("查询补签历史失败", c)
		return
	}
	response.OkWithDetailed(response2.PageResult{
		List:     list,
		Total:    total,
		Page:     pageInfo.Page,
		PageSize: pageInfo.PageSize,
	}, "查询补签历史成功", c)
}

// GetCheckinRun 查询单次补签任务及其明细
func GetCheckinRun(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ResponseError(c, response.CodeInvalidParam)
		return
	}
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	run, err := mysql.GetCheckinRun(id, userId)
	if err != nil {
		response.ResponseError(c, response.CodeRunNotFound)
		return
	}
	response.ResponseSuccess(c, run)
}

// ExportCheckinRun 把一次补签任务的明细导出成xlsx
func ExportCheckinRun(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ResponseError(c, response.CodeInvalidParam)
		return
	}
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	run, err := mysql.GetCheckinRun(id, userId)
	if err != nil {
		response.ResponseError(c, response.CodeRunNotFound)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("补签结果")
	if err != nil {
		zap.L().Error("导出补签结果失败", zap.Error(err))
		response.FailWithMessage("导出失败", c)
		return
	}
	header := sheet.AddRow()
	for _, title := range []string{"日期", "补签时间", "打卡类型", "状态", "失败原因"} {
		header.AddCell().Value = title
	}
	for _, item := range run.Items {
		row := sheet.AddRow()
		row.AddCell().Value = item.Date
		row.AddCell().Value = item.Time
		row.AddCell().Value = clockTypeName(item.ClockType)
		row.AddCell().Value = item.Status
		row.AddCell().Value = item.Error
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="checkin_run_%d.xlsx"`, run.ID))
	if err = file.Write(c.Writer); err != nil {
		zap.L().Error("导出补签结果失败", zap.Int64("runId", run.ID), zap.Error(err))
	}
}

func clockTypeName(clockType int) string {
	switch clockType {
	case checkin.ClockTypeOnDuty:
		return "上班"
	case checkin.ClockTypeOffDuty:
		return "下班"
	}
	return strconv.Itoa(clockType)
}
