package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/team --output domain/team --outpkg teammock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/livematch --output domain/livematch --outpkg livematchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Extractor --dir ../usecase --output usecase --outpkg usecasemock --filename extractor_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FallbackSource --dir ../usecase --output usecase --outpkg usecasemock --filename fallback_source_mock.go
