package content

//go:generate mockgen -source=content.go -destination=mock_cache_test.go -package=content
