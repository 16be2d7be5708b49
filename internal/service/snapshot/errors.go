package snapshot

import "errors"

// ErrScheduleNotLoaded возвращается, пока сохраненное расписание не удалось прочитать
var ErrScheduleNotLoaded = errors.New("snapshot: stored schedule is not loaded yet")
