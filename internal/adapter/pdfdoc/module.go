package pdfdoc

import "go.uber.org/fx"

// Module provides the PDF renderer to the fx container.
var Module = fx.Provide(NewRenderer)
