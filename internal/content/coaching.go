// internal/content/coaching.go
package content

import "github.com/luxehh/hfmessages-backend/internal/model"

// DayMessages holds the three time-of-day variants for one coaching day.
// Not every variant needs an active trigger; the midday variant currently
// has none, which is a scheduling choice, not a content error.
type DayMessages struct {
	Morning string
	Midday  string
	Evening string
}

// Slot returns the variant for a slot name, empty when unknown.
func (d DayMessages) Slot(slot string) string {
	switch slot {
	case model.SlotMorning:
		return d.Morning
	case model.SlotMidday:
		return d.Midday
	case model.SlotEvening:
		return d.Evening
	}
	return ""
}

// Coaching returns the built-in coaching message for (day, slot), with ok
// false when no variant is configured for that cell.
func Coaching(day int, slot string) (string, bool) {
	msgs, found := coachingMessages[day]
	if !found {
		return "", false
	}
	body := msgs.Slot(slot)
	return body, body != ""
}

// coachingMessages is the 30-day heart health program, keyed by day number.
var coachingMessages = map[int]DayMessages{
	1: {
		Morning: "Welcome to luxe ! Weigh yourself before eating and after using the bathroom. Record your Weight to track any changes. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Take your medications on time, set a daily alarm if needed. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Take your medications on time! 💊 Consistent medication management keeps your heart strong. Set a daily alarm if needed!",
		Evening: "Check your Heart Failure Action Plan. Are you in the Green Zone (stable), Yellow Zone (Warning signs), or Red Zone (emergency)? Know when to seek help. Reply Zones to see how to check your zone.",
	},
	2: {
		Morning: "Step on the scale! Daily weighing helps identify fluid retention early. Record and monitor your weight. Eat smart! Focus on a low-sodium, heart-healthy diet today. Cut back on processed food and maintain a healthy diet. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Eat smart! 🥗 Focus on a low-sodium, heart-healthy diet today. Cut back on processed foods and drink plenty of water.",
		Evening: "Zone check time! Review your symptoms. Early action can prevent complications. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	3: {
		Morning: "Time to weigh yourself! Keep an eye out for sudden changes and report any concerns to the Luxe Home Health team. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Blood pressure check! 🩸 Monitor your BP today and log the readings. Consistent tracking can prevent complications.",
		Evening: "Reflect on your day! Did you stay in the Green Zone? Recognizing early signs of trouble can help prevent hospital visits.",
	},
	4: {
		Morning: "Weigh-in time! Sudden weight gain can signal fluid buildup. Record your numbers and alert Luxe Home Health team if needed. Consistent medication management keeps your heart strong. Reply Medications to see the medication management video.",
		Midday:  "Medication reminder! ⏰ Consistency is key to managing heart failure effectively.",
		Evening: "Last Message of the day. Check your Heart Failure Action Plan! Identifying changes early keeps you on the right track.",
	},
	5: {
		Morning: "Good morning! Don't forget to weigh yourself. A sudden 2-3 lb gain may require a medication adjustment. From today it is exercise time! Aim for 10 minutes of light movement today. Regular activity improves heart health. Reply Easy to see the video of Easy exercises.",
		Midday:  "Exercise time! 🚶 Aim for 20-30 minutes of light movement today. Regular activity improves heart health.",
		Evening: "End-of-day check! Review your zone and maintain a healthy diet. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	6: {
		Morning: "Daily weigh-in! Consistency helps track fluid retention. Record your numbers and notify your Luxe Home Health team if necessary. Plan a heart-healthy meal! Choose fresh vegetables, lean protein, and avoid high-sodium foods. Reply Diet to see the video of what kind of meal you can take.",
		Midday:  "Plan a heart-healthy meal! 🍲 Choose fresh vegetables, lean protein, and avoid high-sodium foods.",
		Evening: "Green, Yellow, or Red? Zone check keeps you ahead of the game. Track and Report any concerns to Luxe Home Health team. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	7: {
		Morning: "Weigh yourself today! Sudden changes in weight could signal fluid buildup. Have a good rest of your day. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Take your meds on time! 💊 Consistent medication adherence can prevent complications.",
		Evening: "Take your Medications on time! Consistent medication adherence can prevent complications. Time to assess your zone. Are you noticing any new symptoms? Call the Luxe Home Health team if notice any changes. If not keep up the good work.",
	},
	8: {
		Morning: "Step on the scale! Daily monitoring of your weight keeps you in control of your health. Reply Weigh to see how to weigh daily correctly.",
		Midday:  "Check your BP today! 🩸 High blood pressure can make your heart work harder. Log it and share with your care team.",
		Evening: "Stay in the Green Zone! Recognize early signs of trouble to prevent hospital visits. Have a good evening. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	9: {
		Morning: "Weigh yourself now! Consistency keeps fluid retention in check. Don't forget to log it. Hydrate smart! Limit fluids to your care team's recommendations. Too much can cause fluid buildup.",
		Midday:  "Hydrate smart! 💧 Limit fluids to your care team's recommendations. Too much can cause fluid buildup.",
		Evening: "Review your day and check your zone! Early intervention makes a difference. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	10: {
		Morning: "Weigh-in reminder! Early detection of weight gain helps avoid complications. Have a great day. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Time for light movement! 🚶 Even 20 minutes of walking can improve your heart health.",
		Evening: "Time for light movement! Even 20 minutes of walking can improve your heart health, and Check your zones too. Reply Easy or Moderate to see the videos of Exercise.",
	},
	11: {
		Morning: "Scale check! Watch for sudden weight changes and record your numbers. Stick to a Heart-healthy diet today! Limit salt and stay hydrated. Reply Diet to see the video of what kind of meal you can take.",
		Midday:  "Stick to a heart-healthy diet today! 🥗 Limit salt and stay hydrated.",
		Evening: "Zone check-in time! Recognize symptoms early and stay proactive. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	12: {
		Morning: "Daily weigh-in! Log it and track your progress. Medication time! ⏰ Consistent adherence prevents complications. Reply Medications to see the medication management video.",
		Midday:  "Medication time! ⏰ Consistent adherence prevents complications.",
		Evening: "Check your action plan. Early intervention keeps you out of the hospital. Have a good evening. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	13: {
		Morning: "Good morning! Weigh yourself and log your progress. Have a good rest of your day. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Hydration check! 💧 Follow your fluid restrictions to prevent fluid buildup.",
		Evening: "Zone check! Recognize signs early to stay safe. If things are good keep up the good work. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	14: {
		Morning: "Step on the scale! Keep an eye out for sudden changes. Time to get your daily exercises in too! Movement keeps your heart strong. Call your Luxe Home Health nurse if you gain 2-3 lbs. in 24 hours or 5 lbs. in a week. Reply Weigh to see how to weigh yourself daily.",
		Midday:  "Time for a short walk! 🚶 Movement keeps your heart strong.",
		Evening: "Last message of the second week, Stay ahead by tracking daily. If any sudden changes, please contact the Luxe Home Health team. Know when to seek help. Reply Zones to see how to check your zone.",
	},
	15: {
		Morning: "Good morning! Weigh yourself and log your progress. Consistent medication management keeps your heart strong. Reply Medications to see the medication management video.",
		Midday:  "Considering quitting smoking? 🚭 It's one of the best things you can do for your heart health.",
		Evening: "Zone check! Recognize signs early to stay safe. Have a great evening.",
	},
	16: {
		Morning: "Weigh-in reminder! Early detection of weight gain helps avoid complications.",
		Midday:  "Sodium check! 🥗 Choose fresh foods over processed to reduce salt intake.",
		Evening: "Review your day and check your zone! Early intervention makes a difference. Reply Zones to see how to check what zone you are in.",
	},
	17: {
		Morning: "Good morning! Weigh yourself and log your progress. Time for Exercise! Reply Easy or Moderate to see videos to follow.",
		Midday:  "Don't miss your next appointment! 📅 Regular check-ups help manage your heart failure effectively.",
		Evening: "Zone check-in time! Recognize symptoms early and stay proactive. Have a good evening.",
	},
	18: {
		Morning: "Weigh yourself now! Consistency keeps fluid retention in check. Don't forget to log it. Hydrate smart! Limit fluids to your care team's recommendations. Too much can cause fluid buildup.",
		Midday:  "Medication reminder! 💊 Take your heart medications exactly as prescribed.",
		Evening: "Stay in the Green Zone! Recognize early signs of trouble to prevent hospital visits. We are here to assist you if you need more information.",
	},
	19: {
		Morning: "Weigh yourself today! Sudden changes in weight could signal fluid buildup. Track and report any concerns. Limit salt and stay hydrated. Reply Diet to see the video of what kind of meal you can take.",
		Midday:  "Smoking cessation tip: 🚭 Finding a support group can double your chances of quitting successfully.",
		Evening: "Review your day and check your zone! Early intervention makes a difference.",
	},
	20: {
		Morning: "Time to weigh yourself! Keep an eye out for sudden changes and report any concerns to The Luxe Home Health team.",
		Midday:  "Low-sodium tip: 🥗 Herbs and spices are great alternatives to salt for flavoring food.",
		Evening: "Green, Yellow, or Red? Zone check keeps you ahead of the game. Importance of follow-up appointments with your provider are paramount to your health.",
	},
	21: {
		Morning: "Step on the scale! Daily monitoring of your weight keeps you in control of your health. Sodium awareness and diet improvements. Have a great rest of your day.",
		Midday:  "Remember your follow-up! 📅 Regular provider visits help manage your condition effectively.",
		Evening: "End-of-day check! Review your zone and log today's weight and BP readings.",
	},
	22: {
		Morning: "Weigh yourself now! Consistency keeps fluid retention in check. Don't forget to log it. How to weigh please reply Weigh to see the video.",
		Midday:  "Take your medications consistently! ⏰ Set reminders if needed.",
		Evening: "Review your day and check your zone! Early intervention makes a difference. Consistent Medication management keeps your heart strong.",
	},
	23: {
		Morning: "Good morning! Weigh yourself and log your progress. You're doing great! Time for Exercise! Reply Easy, Moderate or Hard for see a videos to follow along for exercises.",
		Midday:  "Heart-healthy meal planning! 🍲 Focus on fresh vegetables and lean proteins today.",
		Evening: "Green, Yellow, or Red? Zone check keeps you ahead of the game. Stay consistent Your Heart thanks you!",
	},
	24: {
		Morning: "Step on the scale! Keep an eye out for sudden changes. We encourage physical activity for cardiovascular health.",
		Midday:  "Time for some movement! 🚶 Regular activity strengthens your cardiovascular system.",
		Evening: "Zone check-in time! Recognize symptoms early and stay proactive. Understand your zone with replying Zones.",
	},
	25: {
		Morning: "You're doing great! Every step you take brings you closer to better health, Daily weighing helps identify fluid retention early.",
		Midday:  "Blood pressure monitoring day! 🩸 Log your readings to share with your care team.",
		Evening: "Zone check! Recognize signs early to stay safe. Have a great evening and stick to the routine.",
	},
	26: {
		Morning: "Weigh-in reminder! Early detection of weight gain helps avoid complications. Stick to a heart-healthy diet today! Limit salt and stay hydrated. See the Diet video by replying Diet.",
		Midday:  "Medication adherence matters! 💊 Consistency improves outcomes.",
		Evening: "Green, Yellow, or Red? Zone check keeps you ahead of the game. Importance of follow-up appointments with your provider are paramount to your health.",
	},
	27: {
		Morning: "Time to weigh yourself! Keep an eye out for sudden changes and report any concerns to Luxe Home Health team. Don't forget to log your weight.",
		Midday:  "Sodium awareness day! 🥗 Check food labels for hidden salt.",
		Evening: "You're doing great! Review your day and check your zone! Early intervention makes a difference.",
	},
	28: {
		Morning: "Weigh yourself today! Sudden changes in weight could signal fluid buildup. Sticking to a heart-healthy diet and tracking progress is important for Heart health.",
		Midday:  "Get moving today! 🚶 Even small amounts of exercise benefit your heart.",
		Evening: "End-of-day check! Review your zone and log today's weight and BP readings. Have a good evening.",
	},
	29: {
		Morning: "Good Morning! Weigh yourself and log your progress. Consistent medication management keeps your heart strong. Reply Medications to see the medication management video.",
		Midday:  "Hydration check! 💧 Follow your recommended fluid limits to prevent overload.",
		Evening: "Stay ahead by tracking daily. If any sudden changes please contact Luxe home health team.",
	},
	30: {
		Morning: "Good morning! Don't forget to weigh yourself. A sudden 2-3 lb gain may require a medication adjustment.",
		Midday:  "Medication check! ⏰ Consistent adherence prevents complications.",
		Evening: "Last message of month journey! Review your zone and log today's weight. We are proud of you and your Heart thanks you.",
	},
}
