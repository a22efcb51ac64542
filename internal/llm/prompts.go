package llm

const formatSystemPrompt = "你是一个新闻格式化助手，专门将新闻数据格式化为标准JSON格式。"

const formatPrompt = `请将以下新闻数据格式化为JSON格式，包含以下字段：
- title: 新闻标题
- summary: 新闻摘要
- category: 新闻类别
- importance: 重要程度 (1-5)
- keywords: 关键词列表
- created_at: 创建时间

新闻数据：%s

请以JSON格式返回，不要包含其他解释。`

const summarySystemPrompt = "你是一个新闻摘要助手，擅长生成简洁有力的新闻概览。"

const summaryPrompt = `请根据以下新闻条目生成一个简短的概览介绍，用于快速介绍今日新闻要点：

新闻条目：
%s

请生成一段50-100字的概览介绍。`

const introductionSystemPrompt = "你是一个新闻介绍助手，擅长生成简洁明了的新闻介绍。"

const introductionPrompt = `请根据以下新闻条目生成一个简短的介绍语，用于TTS语音合成：

新闻条目：
%s

请生成一段30-60字的介绍语。`
