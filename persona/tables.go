package persona

import "github.com/agentcircle/agentcircle/core"

// campPreferences maps each camp to the content types its agents lean
// toward. Unknown camps fall back to defaultCampSet.
var campPreferences = map[core.Camp][]core.ContentType{
	core.CampHistory: {core.ContentPoem, core.ContentPhilo, core.ContentText},
	core.CampNovel:   {core.ContentStory, core.ContentPoem, core.ContentPhilo},
	core.CampMovie:   {core.ContentStory, core.ContentText},
	core.CampDrama:   {core.ContentPoem, core.ContentStory},
	core.CampGame:    {core.ContentMartial, core.ContentRemedy, core.ContentStory},
	core.CampAnime:   {core.ContentSong, core.ContentStory, core.ContentText},
}

var defaultCampSet = []core.ContentType{core.ContentText, core.ContentPoem}

// Trait candidate sets. High openness favors the creative types, high
// conscientiousness the structured ones.
var (
	creativeSet   = []core.ContentType{core.ContentPoem, core.ContentSong, core.ContentStory, core.ContentPhilo}
	structuredSet = []core.ContentType{core.ContentTheorem, core.ContentRemedy, core.ContentRecipe, core.ContentMartial}
	balancedSet   = []core.ContentType{core.ContentText, core.ContentPoem, core.ContentStory, core.ContentPhilo}
)

// Mood weight tables, indexed in core.Moods order:
// happy, sad, angry, excited, neutral, thoughtful, tired.
var (
	moodWeightsNegative = []int{10, 25, 20, 10, 15, 10, 10}
	moodWeightsPositive = []int{30, 5, 5, 25, 15, 10, 10}
	moodWeightsNeutral  = []int{20, 10, 10, 15, 25, 10, 10}
)

// Topics is the shared vocabulary content is generated about.
var Topics = []string{
	"人生", "爱情", "友情", "梦想", "成长", "回忆", "未来", "时光",
	"孤独", "自由", "勇气", "坚持", "放下", "珍惜", "感恩", "希望",
	"春天", "夏天", "秋天", "冬天", "雨", "雪", "月", "花",
	"山", "水", "风", "云", "海", "星空", "日出", "黄昏",
	"诗歌", "音乐", "绘画", "书法", "茶道", "酒", "棋", "琴",
	"江湖", "武功", "剑", "侠义", "决斗", "修炼", "内功", "轻功",
	"魔法", "龙", "精灵", "修仙", "法宝", "丹药", "阵法", "秘境",
	"人工智能", "宇宙", "时间", "空间", "能量", "物质", "生命", "意识",
	"家乡菜", "夜宵", "茶点", "汤", "面", "饺子", "烧烤", "甜品",
	"思念", "离别", "重逢", "遗憾", "喜悦", "悲伤", "愤怒", "平静",
}

// traitSet returns the candidate content types for a personality vector.
func traitSet(p core.Personality) []core.ContentType {
	switch p.DominantTrait() {
	case "openness":
		return creativeSet
	case "conscientiousness":
		return structuredSet
	default:
		return balancedSet
	}
}

// campSet returns the camp preference set, defaulting for unknown camps.
func campSet(camp core.Camp) []core.ContentType {
	if set, ok := campPreferences[camp]; ok {
		return set
	}
	return defaultCampSet
}

// moodWeights picks the weight table for a personality vector. Neuroticism
// takes priority over extraversion.
func moodWeights(p core.Personality) []int {
	switch {
	case p.Neuroticism > 70:
		return moodWeightsNegative
	case p.Extraversion > 70:
		return moodWeightsPositive
	default:
		return moodWeightsNeutral
	}
}

// intersect returns the members of a that also appear in b, keeping a's
// order.
func intersect(a, b []core.ContentType) []core.ContentType {
	inB := make(map[core.ContentType]bool, len(b))
	for _, t := range b {
		inB[t] = true
	}
	var out []core.ContentType
	for _, t := range a {
		if inB[t] {
			out = append(out, t)
		}
	}
	return out
}
