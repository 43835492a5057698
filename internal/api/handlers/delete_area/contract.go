package delete_area

import "context"

type SpacesService interface {
	DeleteArea(ctx context.Context, areaID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
