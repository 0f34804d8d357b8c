package goquery_test

import (
	"context"
	"fmt"

	"github.com/warnespe001/wikibot/mock"
)

const survivorPage = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories">
	<span>in:</span>
	<a href="/wiki/Category:Survivors">Survivors</a>,
	<a href="/wiki/Category:Characters">Characters</a>
</div>
<h1 class="page-header__title">Commando</h1>
<table class="infoboxtable">
<tbody>
<tr><th class="infoboxname" colspan="2">Commando
</th></tr>
<tr><td colspan="2"><a href="/wiki/File:Commando.png"><img src="/commando.png"></a></td></tr>
<tr><td>Health</td><td>110 (+33 per level)
</td></tr>
<tr><td>Health Regen</td><td>1 hp/s (+0.2 hp/s per level)
</td></tr>
<tr><td>Damage</td><td>12 (+2.4 per level)
</td></tr>
<tr><td>Speed</td><td>7 m/s
</td></tr>
<tr><td>Armor</td><td>0
</td></tr>
</tbody>
</table>
</body>
</html>`

const itemPage = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories">
	<span>in:</span>
	<a href="/wiki/Category:Items">Items</a>,
	<a href="/wiki/Category:Common_Items">Common Items</a>
</div>
<table class="infoboxtable">
<tbody>
<tr><th class="infoboxname" colspan="4">Soldier's Syringe</th></tr>
<tr><td colspan="4"><img src="/syringe.png"></td></tr>
<tr><td class="infoboxdesc" colspan="4">Increases <b>attack speed</b> by <span class="stack">15%</span>.</td></tr>
<tr><td>Rarity</td><td>Common</td></tr>
<tr><th>Stat</th><th>Value</th><th>Stack</th><th>Add</th></tr>
<tr><td>Attack Speed</td><td>15%</td><td>Linear</td><td>+15%</td></tr>
</tbody>
</table>
</body>
</html>`

const shortStatsItemPage = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories"><a>Items</a></div>
<table class="infoboxtable">
<tr><th class="infoboxname" colspan="3">Crowbar</th></tr>
<tr><td>Damage</td><td>75%</td><td>Linear</td></tr>
</table>
</body>
</html>`

const monsterPage = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories"><a>Monsters</a></div>
<table class="infoboxtable">
<tr><td>Health</td><td>80</td></tr>
</table>
</body>
</html>`

const environmentPage = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories">
	<a href="/wiki/Category:Environments">Environments</a>
</div>
<h1 class="page-header__title">
	Distant Roost	
</h1>
<div class="mw-parser-output">
<h2><span class="mw-headline" id="Overview">Overview</span></h2>
<p>A ruined roost.</p>
<h3><span class="mw-headline" id="Newt_Altars">Newt Altars</span></h3>
<p>Altars can appear in these spots:</p>
<ol>
<li>On top of the   cliff
near the spawn.</li>
<li>Under the <b>large</b> bridge.</li>
</ol>
<a href="https://static.example.com/Newt_Altar_Distant_Roost_1.png" class="image"><img data-image-key="Newt_Altar_Distant_Roost_1.png" src="data:image/gif;base64,R0lGOD"></a>
<a href="https://static.example.com/Distant_Roost_Map.png" class="image"><img data-image-key="Distant_Roost_Map.png"></a>
<a href="https://static.example.com/Newt_Altar_Distant_Roost_2.png" class="image"><img data-image-name="Newt Altar Distant Roost 2.png"></a>
<img data-image-key="Newt_Unlinked.png">
<h2><span class="mw-headline" id="Trivia">Trivia</span></h2>
<p>Nothing here.</p>
</div>
</body>
</html>`

const environmentWithoutAltars = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories"><a>Environments</a></div>
<h1>Titanic Plains</h1>
<h2><span id="Overview">Overview</span></h2>
<p>Grassy plains.</p>
</body>
</html>`

const environmentWithoutList = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories"><a>Environments</a></div>
<h1>Abyssal Depths</h1>
<div>
<h2><span id="Newt_Altars">Newt Altars</span></h2>
<p>None have been found.</p>
</div>
</body>
</html>`

const environmentListAfterNextSection = `<!DOCTYPE html>
<html>
<body>
<div class="page-header__categories"><a>Environments</a></div>
<h1>Sky Meadow</h1>
<h3><span id="Newt_Altars">Newt Altars</span></h3>
<p>See below.</p>
<h2><span id="Trivia">Trivia</span></h2>
<ol><li>Not an altar.</li></ol>
</body>
</html>`

const searchPage = `<!DOCTYPE html>
<html>
<body>
<ul class="unified-search__results">
<li class="unified-search__result">
	<h3><a class="unified-search__result__title" href="https://riskofrain2.fandom.com/wiki/Commando">Commando</a></h3>
	<a class="unified-search__result__link" href="https://riskofrain2.fandom.com/wiki/Commando">
		https://riskofrain2.fandom.com/wiki/Commando
	</a>
</li>
<li class="unified-search__result">
	<a class="unified-search__result__link" href="https://riskofrain2.fandom.com/wiki/Commando_(Skin)">
		https://riskofrain2.fandom.com/wiki/Commando_(Skin)
	</a>
</li>
</ul>
</body>
</html>`

const emptySearchPage = `<!DOCTYPE html>
<html>
<body>
<p class="unified-search__no-results">No results found.</p>
</body>
</html>`

// pageFetcher serves fixed HTML per URL and records requested URLs.
func pageFetcher(pages map[string]string, requested *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if requested != nil {
				*requested = append(*requested, url)
			}
			html, ok := pages[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}
