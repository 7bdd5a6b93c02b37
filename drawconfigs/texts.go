package drawconfigs

import (
	"github.com/reusee/catdraw/configs"
)

type DefaultText string

func (DefaultText) ConfigExpr() string {
	return "default_text"
}

func (Module) DefaultText(
	loader configs.Loader,
) DefaultText {
	return resolve(loader, nil, DefaultText("You are beautiful"))
}

type Wishes []string

func (Wishes) ConfigExpr() string {
	return "wishes"
}

func (Module) Wishes(
	loader configs.Loader,
) Wishes {
	if wishes, ok := configs.Lookup[Wishes](loader); ok && len(wishes) > 0 {
		return wishes
	}
	return defaultWishes
}

var defaultWishes = Wishes{
	"Change takes time",
	"I believe in you",
	"Best of luck today",
	"Give it time",
	"See which way the cat jumps",
	"Cats land on their feet; so will you",
	"Patience brings reward",
	"Keep on keeping on",
	"You've done well",
	"Fingers crossed",
	"One step at a time",
	"It's okay to feel sad",
	"This too shall pass",
	"Take time for yourself",
	"I know it's hard",
	"I'm proud of you",
	"You'll handle this",
	"No need to rush",
	"It'll work out",
	"You're not alone",
	"You're valued",
	"Don't give up",
	"One day at a time",
	"You're not a superhero",
	"Ask for an advice",
}
