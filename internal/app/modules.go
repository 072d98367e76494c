package app

import (
	"github.com/specialistvlad/figcore/internal/registry"
	"github.com/specialistvlad/figcore/modules/axes"
	"github.com/specialistvlad/figcore/modules/bar"
	"github.com/specialistvlad/figcore/modules/colorlegend"
	"github.com/specialistvlad/figcore/modules/legend"
	"github.com/specialistvlad/figcore/modules/scatter"
	"github.com/specialistvlad/figcore/modules/sizelegend"
	"github.com/specialistvlad/figcore/modules/sliders"
	"github.com/specialistvlad/figcore/modules/symbollegend"
	"github.com/specialistvlad/figcore/modules/updatemenus"
)

// coreModules is the definitive list of all modules that are compiled into
// the figcore binary. Components resolve in this order, so axes come
// before the legends that read trace placement.
var coreModules = []registry.Module{
	&scatter.Module{},
	&bar.Module{},
	&axes.Module{},
	&legend.Module{},
	&colorlegend.Module{},
	&sizelegend.Module{},
	&symbollegend.Module{},
	&updatemenus.Module{},
	&sliders.Module{},
}
