package jobs

// Logger интерфейс для логирования
// Printf нужен адаптеру cron.PrintfLogger
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Printf(format string, v ...interface{})
}
