package tutor

import "fmt"

func languageInstruction(lang Language) string {
	switch lang {
	case LanguageArabic:
		return "يرجى كتابة الإجابة باللغة العربية بشكل كامل."
	case LanguageBoth:
		return "Please provide the answer in both English and Arabic languages."
	default:
		return "Please write the answer in English."
	}
}

func summaryPrompt(text string, lang Language) string {
	return fmt.Sprintf(`Create a comprehensive and well-structured summary of the following educational content.
%s

REQUIREMENTS:
- Clear and concise while maintaining essential information
- Organized with proper sections and bullet points
- Include key concepts, definitions, and main ideas
- Highlight important formulas, theories, or principles
- Suitable for student review and quick reference

CONTENT TO SUMMARIZE:
%s

STRUCTURED SUMMARY:

## Main Topic & Objective
## Key Concepts
## Important Details
## Examples & Applications
## Key Takeaways

Summary:`, languageInstruction(lang), text)
}

func explainPromptEnglish(text string) string {
	return fmt.Sprintf(`Provide a comprehensive and detailed explanation of the following educational content.

EXPLANATION REQUIREMENTS:
- Clear and detailed explanation using simple, understandable language
- Break down complex concepts into easily digestible parts
- Include practical examples from everyday life and real-world applications
- Explain important formulas or theories with context
- Show connections between different concepts
- Provide memory aids and learning tips

EDUCATIONAL CONTENT:
%s

DETAILED EXPLANATION:

## Overview
## Core Concepts
## Practical Examples
## Connections & Relationships
## Learning Tips & Memory Aids

Explanation:`, text)
}

func explainPromptArabic(text string) string {
	return fmt.Sprintf(`اشرح المحتوى التعليمي التالي بالعربية بطريقة شاملة ومفصلة.

المطلوب في الشرح:
- شرح واضح ومفصل باستخدام لغة بسيطة ومفهومة
- تقسيم المفاهيم المعقدة إلى أجزاء سهلة الفهم
- إدراج أمثلة عملية وتطبيقية من الحياة اليومية
- توضيح الصيغ أو النظريات المهمة مع شرحها
- ربط المفاهيم ببعضها البعض

المحتوى التعليمي:
%s

الشرح التفصيلي بالعربية:

## نظرة عامة
## المفاهيم الأساسية
## أمثلة عملية
## نصائح للفهم والحفظ

الشرح:`, text)
}

func exercisesPrompt(text string, lang Language) string {
	return fmt.Sprintf(`Create 5 comprehensive educational exercises based on the following course content.
%s
The exercises should cover different skill levels and question types.

IMPORTANT: You must format each exercise EXACTLY as shown below, with clear separators:

=== EXERCISE 1 ===
Question: [Write a clear, specific question here]
Answer: [Provide a detailed answer with explanations]

=== EXERCISE 2 ===
Question: [Write a clear, specific question here]
Answer: [Provide a detailed answer with explanations]

(continue through EXERCISE 5)

EXERCISE REQUIREMENTS:
- Include variety: multiple choice, short answer, problem-solving, application questions
- Progress from basic understanding to advanced application
- Provide detailed, educational answers with explanations
- Make questions specific and clear, not generic

COURSE CONTENT:
%s

Generate the exercises now:`, languageInstruction(lang), text)
}
