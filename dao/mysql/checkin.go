package mysql

import (
	"buqian/global"
	"buqian/model/checkin"
	"buqian/model/common/request"

	"github.com/pkg/errors"
)

// SaveCheckinRun 归档一次补签任务
func SaveCheckinRun(run *checkin.CheckinRun) (err error) {
	err = global.GLOAB_DB.Create(run).Error
	if err != nil {
		return errors.Wrap(err, "补签任务落库失败")
	}
	return nil
}

// ListCheckinRuns 分页查询某个用户的补签任务历史，新的在前
func ListCheckinRuns(userId string, pageInfo request.PageInfo) (runs []checkin.CheckinRun, total int64, err error) {
	if pageInfo.Page <= 0 {
		pageInfo.Page = 1
	}
	if pageInfo.PageSize <= 0 {
		pageInfo.PageSize = 10
	}
	db := global.GLOAB_DB.Model(&checkin.CheckinRun{}).Where("user_id = ?", userId)
	err = db.Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "查询补签任务总数失败")
	}
	err = db.Order("created_at desc").
		Offset((pageInfo.Page - 1) * pageInfo.PageSize).
		Limit(pageInfo.PageSize).
		Find(&runs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "查询补签任务历史失败")
	}
	return runs, total, nil
}

// GetCheckinRun 查询单次补签任务及其明细
func GetCheckinRun(id int64, userId string) (run *checkin.CheckinRun, err error) {
	run = new(checkin.CheckinRun)
	err = global.GLOAB_DB.Preload("Items").
		Where("id = ? and user_id = ?", id, userId).
		First(run).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询补签任务失败")
	}
	return run, nil
}
