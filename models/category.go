package models

// Category identifies the scoring term a check contributes to.
type Category string

const (
	CategoryOS             Category = "os"
	CategoryRuntimeVersion Category = "runtime-version"
	CategoryExtensions     Category = "extension-set"
	CategoryWebServer      Category = "web-server"
	CategoryDatabase       Category = "database-drivers"
	CategoryFilesystem     Category = "filesystem"
	CategoryPerformance    Category = "performance"
)

// Categories lists every scoring term in report order.
var Categories = []Category{
	CategoryOS,
	CategoryRuntimeVersion,
	CategoryExtensions,
	CategoryWebServer,
	CategoryDatabase,
	CategoryFilesystem,
	CategoryPerformance,
}

func (c Category) String() string {
	return string(c)
}
