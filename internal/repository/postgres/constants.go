package postgres

const (
	SRID4326 = 4326

	// geometryColumn - имя геометрической колонки таблицы районов
	geometryColumn = "geom"

	// upsertBatchSize - число строк между логами прогресса при загрузке
	upsertBatchSize = 100
)

// containmentColumns - колонки, которые отдаются в properties найденного района
var containmentColumns = []string{"id", "name", "description"}
