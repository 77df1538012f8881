package constants

const (
	GetAllPilots = `
	SELECT * FROM pilots ORDER BY display_name
	`

	GetAllPilotCategoryLinks = `
	SELECT pilot_id, category_id FROM pilot_categories
	`

	GetAllCategories = `
	SELECT * FROM categories ORDER BY name
	`

	GetAllAircraft = `
	SELECT * FROM aircraft ORDER BY name
	`

	GetAllPurposes = `
	SELECT * FROM flight_purposes ORDER BY name
	`
)
