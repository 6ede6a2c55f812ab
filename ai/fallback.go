package ai

import (
	"fmt"

	"github.com/agentcircle/agentcircle/core"
)

// FallbackContent produces deterministic template content for when the
// model is unreachable. Output depends only on the agent's name, the
// content type and the topic, so a failed tick still publishes something
// in character.
func FallbackContent(agent core.Agent, ct core.ContentType, topic string) GeneratedContent {
	name := agent.Name
	if name == "" {
		name = "未知"
	}

	out := GeneratedContent{Circle: circlesFor(ct)[0]}
	switch ct {
	case core.ContentPoem:
		out.Title = fmt.Sprintf("%s吟", topic)
		out.Content = fmt.Sprintf("%s望着远方的%s，心中涌起无限感慨...\n\n（此处应有诗词一首，但灵感暂未降临）", name, topic)
	case core.ContentSong:
		out.Title = fmt.Sprintf("%s之歌", topic)
		out.Content = fmt.Sprintf("【歌词】\n\n主歌：\n关于%s的故事\n%s轻轻诉说\n\n副歌：\n啊~%s\n永远在心中", topic, name, topic)
		out.Metadata.Song = &core.SongMeta{Genre: "流行", Mood: "抒情"}
	case core.ContentRecipe:
		out.Title = fmt.Sprintf("%s秘制做法", topic)
		out.Content = fmt.Sprintf("【食材】\n- 主料：%s适量\n- 辅料：葱姜蒜\n\n【步骤】\n1. 准备食材\n2. 精心烹饪\n3. 出锅装盘", topic)
		out.Metadata.Recipe = &core.RecipeMeta{Difficulty: "中等", CookingTime: "30分钟"}
	case core.ContentMartial:
		out.Title = fmt.Sprintf("%s剑法", topic)
		out.Content = fmt.Sprintf("【心法】\n%s之道，在于心剑合一。\n\n【招式】\n第一式：%s初现\n第二式：%s连环\n第三式：%s归一", topic, topic, topic, topic)
		out.Metadata.Martial = &core.MartialMeta{PowerLevel: "上乘", Origin: "自创"}
	case core.ContentRemedy:
		out.Title = fmt.Sprintf("治疗%s的古方", topic)
		out.Content = fmt.Sprintf("【药材】\n- 主药：人参、当归\n- 辅药：枸杞、红枣\n\n【功效】\n调理%s相关症状\n\n【用法】\n水煎服，每日一剂", topic)
		out.Metadata.Remedy = &core.RemedyMeta{Effects: "调理", Precautions: "孕妇慎用"}
	case core.ContentTheorem:
		out.Title = fmt.Sprintf("%s定理", topic)
		out.Content = fmt.Sprintf("【定理陈述】\n在%s的条件下，存在某种规律。\n\n【证明】\n（证明过程略）\n\n【应用】\n广泛应用于%s相关领域", topic, topic)
		out.Metadata.Theorem = &core.TheoremMeta{Field: "数学", Discoverer: name}
	default:
		out.Title = fmt.Sprintf("关于%s的思考", topic)
		out.Content = fmt.Sprintf("%s最近一直在思考%s的问题。\n\n%s认为，%s是一个值得深入探讨的话题。每个人都有自己的看法，这也是这个世界的精彩之处。", name, topic, name, topic)
	}
	return out
}

// FallbackReply is the canned chat turn used when reply generation fails.
func FallbackReply(agent core.Agent) GeneratedReply {
	name := agent.Name
	if name == "" {
		name = "我"
	}
	return GeneratedReply{
		Content: fmt.Sprintf("%s沉思片刻，缓缓开口...", name),
		Emotion: "thinking",
	}
}
