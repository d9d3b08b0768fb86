package mocks

//go:generate mockery --name InteractionStore --srcpkg github.com/reelshop-lab/reelshop/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name CatalogStore --srcpkg github.com/reelshop-lab/reelshop/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
