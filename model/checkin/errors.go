package checkin

// DataFetchError 考勤记录列表拉取失败，分析阶段直接终止
type DataFetchError struct {
	Err error
}

func (e *DataFetchError) Error() string {
	return "获取考勤记录失败: " + e.Err.Error()
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// ConfigFetchError 补签流程配置拉取失败，提交阶段在尝试任何一条之前终止
type ConfigFetchError struct {
	Err error
}

func (e *ConfigFetchError) Error() string {
	return "获取补签配置失败: " + e.Err.Error()
}

func (e *ConfigFetchError) Unwrap() error {
	return e.Err
}
