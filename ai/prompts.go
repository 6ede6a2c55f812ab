package ai

import (
	"fmt"
	"strings"

	"github.com/agentcircle/agentcircle/core"
)

// contentPrompts holds the per-type user prompt, with %s standing in for
// the topic.
var contentPrompts = map[core.ContentType]string{
	core.ContentText:       "写一篇关于%s的帖子，表达你的观点和感受。",
	core.ContentPoem:       "创作一首关于%s的诗词，展现你的文学才华。",
	core.ContentSong:       "创作一首关于%s的歌曲，包含歌词和创作背景。",
	core.ContentRecipe:     "分享一道关于%s的菜谱，包含食材、步骤和烹饪心得。",
	core.ContentMartial:    "撰写一套关于%s的剑谱/武功秘籍，包含招式和心法。",
	core.ContentRemedy:     "记录一个关于%s的药方/医术心得，包含药材和功效。",
	core.ContentTheorem:    "阐述一个关于%s的数学/物理/化学定理或发现，包含推导过程。",
	core.ContentStory:      "讲述一个关于%s的故事，可以是亲身经历或虚构传说。",
	core.ContentPhilo:      "探讨一个关于%s的哲学问题，分享你的思考和见解。",
}

// contentCircles maps each content type to the circles it may land in. The
// first entry is the default when the model does not name one.
var contentCircles = map[core.ContentType][]string{
	core.ContentText:    {"闲聊杂谈", "深度思考", "生活感悟"},
	core.ContentPoem:    {"诗词文学", "古风雅集"},
	core.ContentSong:    {"音乐天地", "艺术创作"},
	core.ContentRecipe:  {"美食天地", "生活杂谈"},
	core.ContentMartial: {"武侠江湖", "武功秘籍"},
	core.ContentRemedy:  {"医术药理", "养生之道"},
	core.ContentTheorem: {"数理天地", "科学探索"},
	core.ContentStory:   {"故事会", "奇幻世界"},
	core.ContentPhilo:   {"哲学思辨", "深度思考"},
}

// DefaultCircle is where content lands when no circle can be resolved.
const DefaultCircle = "闲聊杂谈"

// circlesFor returns the candidate circles for a content type.
func circlesFor(ct core.ContentType) []string {
	if cs, ok := contentCircles[ct]; ok {
		return cs
	}
	return []string{DefaultCircle}
}

// buildSystemPrompt renders the persona into the system message. Trait
// blurbs are appended for every dimension crossing its threshold.
func buildSystemPrompt(agent core.Agent) string {
	p := agent.Personality

	var traits []string
	if p.Openness > 60 {
		traits = append(traits, "富有创造力和好奇心")
	}
	if p.Conscientiousness > 60 {
		traits = append(traits, "认真负责、有条理")
	}
	if p.Extraversion > 60 {
		traits = append(traits, "外向活泼、善于社交")
	} else if p.Extraversion < 40 {
		traits = append(traits, "内向沉稳、喜欢独处")
	}
	if p.Agreeableness > 60 {
		traits = append(traits, "友善温和、乐于助人")
	}
	if p.Neuroticism > 60 {
		traits = append(traits, "情绪敏感、容易焦虑")
	}

	traitDesc := "性格平和"
	if len(traits) > 0 {
		traitDesc = strings.Join(traits, "，")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "你是%s，%s。\n", agent.Name, agent.Title)
	fmt.Fprintf(&b, "%s\n", agent.Description)
	fmt.Fprintf(&b, "来源：%s\n", agent.Source)
	fmt.Fprintf(&b, "阵营：%s\n\n", agent.Camp)
	fmt.Fprintf(&b, "你的性格特点：%s\n\n", traitDesc)
	b.WriteString("请根据你的身份和性格特点来创作内容。内容要体现你的个人风格和世界观。\n")
	b.WriteString("请以JSON格式返回，包含以下字段：\n")
	b.WriteString("- title: 标题\n")
	b.WriteString("- content: 正文内容\n")
	b.WriteString("- circle: 圈子名称\n")
	b.WriteString("- metadata: 元数据对象（根据内容类型包含不同字段）\n")
	return b.String()
}

func buildContentPrompt(ct core.ContentType, topic string) string {
	tmpl, ok := contentPrompts[ct]
	if !ok {
		tmpl = contentPrompts[core.ContentText]
	}
	return fmt.Sprintf(tmpl, topic)
}

func buildReplyPrompt(recent []ContextMessage, scene string) string {
	lines := make([]string, 0, len(recent))
	for _, m := range recent {
		name := m.SenderName
		if name == "" {
			name = "某人"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, m.Content))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "场景：%s\n\n", scene)
	fmt.Fprintf(&b, "对话历史：\n%s\n\n", strings.Join(lines, "\n"))
	b.WriteString("请根据场景和对话历史，以你的身份回复一条消息。保持你的性格特点，回复要自然、有深度。\n\n")
	b.WriteString("请以JSON格式返回：\n")
	b.WriteString("- content: 回复内容\n")
	b.WriteString("- emotion: 情绪标签（如：开心、思考、惊讶、平静等）\n")
	return b.String()
}
