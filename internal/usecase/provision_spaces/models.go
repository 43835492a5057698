package provision_spaces

// Request модель запроса массового создания мест
type Request struct {
	AreaID      int64  // ID зоны-владельца
	Prefix      string // Префикс номера места (например, "B")
	StartNumber int    // Начало диапазона (включительно)
	EndNumber   int    // Конец диапазона (включительно)
}

// Response счетчики результата массового создания
type Response struct {
	Created int // Создано новых мест
	Skipped int // Пропущено уже существующих номеров
}
