package drivers

import (
	// import all supported drivers
	_ "github.com/nextbac/bacaddr/core/table/drivers/bolt"
	_ "github.com/nextbac/bacaddr/core/table/drivers/memory"
)
